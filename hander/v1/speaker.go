package V1

import (
	"net/http"
	"speaker/config"
	_ "speaker/docs"
	"speaker/domain"
	"speaker/hander"
	"speaker/hander/midwire"
	"speaker/pkg/log"
	"speaker/serve"
	"speaker/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type SpeakerHander struct {
	*hander.BaseHandler

	log     *log.Logger
	speaker *usecase.SpeakerUsecase
	player  *usecase.PlayerUsecase
	bulk    *usecase.BulkUsecase
}

func NewSpeakerHander(
	s *serve.HttpServer,
	c *config.Config,
	l *log.Logger,
	base *hander.BaseHandler,
	speaker *usecase.SpeakerUsecase,
	player *usecase.PlayerUsecase,
	bulk *usecase.BulkUsecase,
) *SpeakerHander {
	h := &SpeakerHander{
		BaseHandler: base,
		log:         l.WithModule("SpeakerHander"),
		speaker:     speaker,
		player:      player,
		bulk:        bulk,
	}

	s.Echo.GET("/swagger/*", echoSwagger.WrapHandler)

	g := s.Echo.Group("/v1")
	g.GET("/posts/:id/player", h.Player)
	g.GET("/posts/:id/audio/url", h.ArtifactURL)

	admin := s.Echo.Group("/v1", midwire.Auth(c.Auth.Secret))
	admin.POST("/posts/:id/audio", h.Synthesize)
	admin.GET("/posts/:id/audio/ws", h.SynthesizeWS)
	admin.DELETE("/posts/:id/audio", h.RemoveArtifact)
	admin.DELETE("/posts/:id", h.ContentDeleted)
	admin.POST("/audio/bulk", h.SynthesizeAll)

	if c.Storage.Driver == "" || c.Storage.Driver == "local" {
		s.Echo.Static("/audio", c.Storage.Dir)
	}
	return h
}

// Synthesize godoc
// @Summary Generate the audio of a content item
// @Description Fetches the item, builds speech segments and replaces its audio
// @Tags Speaker
// @Accept json
// @Produce json
// @Param id path string true "Content id"
// @Param req body domain.SynthesizeReq false "Speech template, content by default"
// @Success 200 {object} hander.Response{data=domain.Artifact}
// @Security BearerAuth
// @Router /v1/posts/{id}/audio [post]
func (h *SpeakerHander) Synthesize(c echo.Context) error {
	var req domain.SynthesizeReq
	if err := c.Bind(&req); err != nil {
		return h.NewResponseWithError(c, "Invalid request", err)
	}
	artifact, err := h.speaker.VoiceActing(c.Request().Context(), c.Param("id"), req.Stid, nil)
	if err != nil {
		return h.NewResponseWithError(c, domain.UserMessage(err), err)
	}
	return h.NewResponseWithData(c, artifact)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SynthesizeWS godoc
// @Summary Generate audio and stream progress
// @Description Upgrades to a websocket, sends one JSON event per run step and a final response
// @Tags Speaker
// @Param id path string true "Content id"
// @Param stid query string false "Speech template"
// @Success 101 {string} string "Switching Protocols"
// @Security BearerAuth
// @Router /v1/posts/{id}/audio/ws [get]
func (h *SpeakerHander) SynthesizeWS(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	progress := func(e domain.SegmentEvent) {
		if err := ws.WriteJSON(e); err != nil {
			h.log.Error("send progress", log.String("key", e.Key), log.Error(err))
		}
	}
	artifact, err := h.speaker.VoiceActing(c.Request().Context(), c.Param("id"), c.QueryParam("stid"), progress)
	return ws.WriteJSON(hander.Response{Success: err == nil, Data: artifact, Message: domain.UserMessage(err)})
}

// RemoveArtifact godoc
// @Summary Remove the audio of a content item
// @Tags Speaker
// @Produce json
// @Param id path string true "Content id"
// @Success 200 {object} hander.Response
// @Security BearerAuth
// @Router /v1/posts/{id}/audio [delete]
func (h *SpeakerHander) RemoveArtifact(c echo.Context) error {
	if err := h.player.RemoveArtifact(c.Request().Context(), c.Param("id")); err != nil {
		return h.NewResponseWithError(c, "Failed to remove audio", err)
	}
	return h.NewResponseWithMessage(c, "Audio removed")
}

// ContentDeleted godoc
// @Summary Notify that a content item was deleted
// @Tags Speaker
// @Produce json
// @Param id path string true "Content id"
// @Success 200 {object} hander.Response
// @Security BearerAuth
// @Router /v1/posts/{id} [delete]
func (h *SpeakerHander) ContentDeleted(c echo.Context) error {
	if err := h.speaker.OnContentDeleted(c.Request().Context(), c.Param("id")); err != nil {
		return h.NewResponseWithError(c, "Failed to remove audio", err)
	}
	return h.NewResponseWithMessage(c, "Audio removed")
}

// Player godoc
// @Summary Audio player markup of a content item
// @Tags Speaker
// @Produce html
// @Param id path string true "Content id"
// @Success 200 {string} string "player html"
// @Failure 404 {string} string "no audio"
// @Router /v1/posts/{id}/player [get]
func (h *SpeakerHander) Player(c echo.Context) error {
	mode := domain.RenderModeNormal
	if c.QueryParam("speaker-ssml") == "1" {
		mode = domain.RenderModeFull
	}
	markup, ok := h.player.PlayerMarkup(c.Request().Context(), c.Param("id"), mode)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.HTML(http.StatusOK, markup)
}

// ArtifactURL godoc
// @Summary Public address of the audio of a content item
// @Tags Speaker
// @Produce json
// @Param id path string true "Content id"
// @Success 200 {object} hander.Response{data=domain.ArtifactURLResp}
// @Router /v1/posts/{id}/audio/url [get]
func (h *SpeakerHander) ArtifactURL(c echo.Context) error {
	url, ok := h.player.ArtifactURL(c.Request().Context(), c.Param("id"))
	if !ok {
		return h.NewResponseWithError(c, domain.UserMessage(domain.ErrArtifactNotFound), domain.ErrArtifactNotFound)
	}
	return h.NewResponseWithData(c, domain.ArtifactURLResp{URL: url})
}

// SynthesizeAll godoc
// @Summary Generate audio for many content items
// @Tags Speaker
// @Accept json
// @Produce json
// @Param req body domain.BulkReq true "Content ids and template"
// @Success 200 {object} hander.Response{data=[]domain.BulkResult}
// @Security BearerAuth
// @Router /v1/audio/bulk [post]
func (h *SpeakerHander) SynthesizeAll(c echo.Context) error {
	var req domain.BulkReq
	if err := c.Bind(&req); err != nil {
		return h.NewResponseWithError(c, "Invalid request", err)
	}
	return h.NewResponseWithData(c, h.bulk.SynthesizeAll(c.Request().Context(), req.IDs, req.Stid))
}
