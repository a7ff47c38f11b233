package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	ServeName string
	MySQL     MySQLConfig
	Log       LogConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Oss       OssConfig
	Renderer  RendererConfig
	Tts       TtsConfig
	Speech    SpeechConfig
	Player    PlayerConfig
	Bulk      BulkConfig
}
type LogConfig struct {
	Level int
}
type MySQLConfig struct {
	Dsn string
}

// AuthConfig guards the admin routes. An empty secret disables the guard.
type AuthConfig struct {
	Secret string
}

// StorageConfig selects where finished audio lives.
// Driver is "local" or "minio".
type StorageConfig struct {
	Driver  string
	Dir     string
	BaseURL string
	TempDir string
}

type OssConfig struct {
	EndPoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	Secure     bool
	Prefix     string
}

type RendererConfig struct {
	// URLPattern is the public address of a content item, "{id}" is replaced by its key.
	URLPattern   string
	Timeout      time.Duration
	StartMarker  string
	EndMarker    string
	TemplateName string
}

// TtsConfig picks the synthesis backend: "google", "http" or "stub".
type TtsConfig struct {
	Provider        string
	BaseUrl         string
	ApiKey          string
	CredentialsFile string
}

type SpeechConfig struct {
	Voice           string
	LanguageCode    string
	AudioProfile    string
	AudioEncoding   string
	SpeakingRate    float64
	Pitch           float64
	Volume          float64
	SampleRate      int64
	AllowedTiers    []string
	FallbackVariant string
	MaxChars        int
	MuteMarker      string
	BeforeAudio     string
	AfterAudio      string
}

type PlayerConfig struct {
	Position string
	Style    string
	BgColor  string
	Link     string
}

type BulkConfig struct {
	Concurrency int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", ":8080")
	v.SetDefault("servename", "speaker")
	v.SetDefault("log.level", 0)
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.dir", "./data/speaker")
	v.SetDefault("storage.baseurl", "http://localhost:8080/audio")
	v.SetDefault("oss.prefix", "speaker")
	v.SetDefault("renderer.urlpattern", "http://localhost/?p={id}")
	v.SetDefault("renderer.timeout", 60*time.Second)
	v.SetDefault("renderer.startmarker", "<!-- Speaker Content Start -->")
	v.SetDefault("renderer.endmarker", "<!-- Speaker Content End -->")
	v.SetDefault("renderer.templatename", "speaker")
	v.SetDefault("tts.provider", "google")
	v.SetDefault("speech.voice", "en-US-Standard-C")
	v.SetDefault("speech.languagecode", "en-US")
	v.SetDefault("speech.audioprofile", "handset-class-device")
	v.SetDefault("speech.audioencoding", "MP3")
	v.SetDefault("speech.speakingrate", 1.0)
	v.SetDefault("speech.pitch", 0.0)
	v.SetDefault("speech.volume", 0.0)
	v.SetDefault("speech.samplerate", 24000)
	v.SetDefault("speech.allowedtiers", []string{"standard"})
	v.SetDefault("speech.fallbackvariant", "Standard-A")
	v.SetDefault("speech.maxchars", 4995)
	v.SetDefault("speech.mutemarker", "speaker-mute")
	v.SetDefault("player.position", "before-content")
	v.SetDefault("player.style", "speaker-round")
	v.SetDefault("player.bgcolor", "#4285F4")
	v.SetDefault("player.link", "none")
	v.SetDefault("bulk.concurrency", 1)
}

func NewConfig() *Config {
	v := viper.New()
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in settings without touching disk or env.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		panic(err)
	}
	return c
}
