package domain

// TtsResponse is the reply of a JSON relay speech endpoint.
type TtsResponse struct {
	Reqid     string `json:"reqid"`
	Operation string `json:"operation"`
	Sequence  int    `json:"sequence"`
	Data      string `json:"data"` // base64 audio
	Addition  struct {
		Duration string `json:"duration"` // milliseconds
	} `json:"addition"`
}
