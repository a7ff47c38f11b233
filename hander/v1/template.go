package V1

import (
	"speaker/config"
	"speaker/domain"
	"speaker/hander"
	"speaker/hander/midwire"
	"speaker/pkg/log"
	"speaker/serve"
	"speaker/usecase"

	"github.com/labstack/echo/v4"
)

type TemplateHander struct {
	*hander.BaseHandler

	log       *log.Logger
	templates *usecase.TemplateUsecase
}

func NewTemplateHander(s *serve.HttpServer, c *config.Config, l *log.Logger, base *hander.BaseHandler, templates *usecase.TemplateUsecase) *TemplateHander {
	h := &TemplateHander{
		BaseHandler: base,
		log:         l.WithModule("TemplateHander"),
		templates:   templates,
	}
	g := s.Echo.Group("/v1", midwire.Auth(c.Auth.Secret))
	g.GET("/templates", h.List)
	g.GET("/templates/:stid", h.Get)
	g.POST("/templates", h.Save)
	g.DELETE("/templates/:stid", h.Delete)
	g.POST("/templates/:stid/default", h.SetDefault)
	g.GET("/post-types/:postType/template", h.DefaultFor)
	return h
}

// List godoc
// @Summary List speech templates
// @Tags Template
// @Produce json
// @Success 200 {object} hander.Response{data=[]domain.SpeechTemplate}
// @Security BearerAuth
// @Router /v1/templates [get]
func (h *TemplateHander) List(c echo.Context) error {
	tpls, err := h.templates.List(c.Request().Context())
	if err != nil {
		return h.NewResponseWithError(c, "Failed to list templates", err)
	}
	return h.NewResponseWithData(c, tpls)
}

// Get godoc
// @Summary Get a speech template
// @Tags Template
// @Produce json
// @Param stid path string true "Template id"
// @Success 200 {object} hander.Response{data=domain.SpeechTemplate}
// @Security BearerAuth
// @Router /v1/templates/{stid} [get]
func (h *TemplateHander) Get(c echo.Context) error {
	tpl, err := h.templates.Get(c.Request().Context(), c.Param("stid"))
	if err != nil {
		return h.NewResponseWithError(c, domain.UserMessage(err), err)
	}
	return h.NewResponseWithData(c, tpl)
}

// Save godoc
// @Summary Create or replace a speech template
// @Tags Template
// @Accept json
// @Produce json
// @Param template body domain.SpeechTemplate true "Template"
// @Success 200 {object} hander.Response
// @Security BearerAuth
// @Router /v1/templates [post]
func (h *TemplateHander) Save(c echo.Context) error {
	var tpl domain.SpeechTemplate
	if err := c.Bind(&tpl); err != nil {
		return h.NewResponseWithError(c, "Invalid template", err)
	}
	if err := h.templates.Save(c.Request().Context(), tpl); err != nil {
		return h.NewResponseWithError(c, domain.UserMessage(err), err)
	}
	return h.NewResponseWithMessage(c, "Speech Template saved successfully")
}

// Delete godoc
// @Summary Delete a speech template
// @Tags Template
// @Produce json
// @Param stid path string true "Template id"
// @Success 200 {object} hander.Response
// @Security BearerAuth
// @Router /v1/templates/{stid} [delete]
func (h *TemplateHander) Delete(c echo.Context) error {
	if err := h.templates.Delete(c.Request().Context(), c.Param("stid")); err != nil {
		return h.NewResponseWithError(c, "Failed to delete template", err)
	}
	return h.NewResponseWithMessage(c, "Speech Template deleted successfully")
}

// SetDefault godoc
// @Summary Make a template the default of a post type
// @Tags Template
// @Accept json
// @Produce json
// @Param stid path string true "Template id, content for content based speech"
// @Param req body domain.SetDefaultReq true "Post type"
// @Success 200 {object} hander.Response
// @Security BearerAuth
// @Router /v1/templates/{stid}/default [post]
func (h *TemplateHander) SetDefault(c echo.Context) error {
	var req domain.SetDefaultReq
	if err := c.Bind(&req); err != nil {
		return h.NewResponseWithError(c, "Invalid request", err)
	}
	if err := h.templates.SetDefault(c.Request().Context(), c.Param("stid"), req.PostType); err != nil {
		return h.NewResponseWithError(c, domain.UserMessage(err), err)
	}
	return h.NewResponseWithMessage(c, "Default Speech Template saved successfully")
}

// DefaultFor godoc
// @Summary Template id used for a post type
// @Tags Template
// @Produce json
// @Param postType path string true "Post type"
// @Success 200 {object} hander.Response{data=string}
// @Security BearerAuth
// @Router /v1/post-types/{postType}/template [get]
func (h *TemplateHander) DefaultFor(c echo.Context) error {
	id, err := h.templates.DefaultFor(c.Request().Context(), c.Param("postType"))
	if err != nil {
		return h.NewResponseWithError(c, "Failed to resolve template", err)
	}
	return h.NewResponseWithData(c, id)
}
