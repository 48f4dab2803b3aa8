package controller

import (
	"promptlink-be/internal/dto"
	"promptlink-be/internal/pkg/serverutils"
	"promptlink-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRelayController interface {
	RegisterRoutes(r fiber.Router)
	StartExpertPanel(ctx *fiber.Ctx) error
	StartConferenceChain(ctx *fiber.Ctx) error
	StopSession(ctx *fiber.Ctx) error
	GetSessionStatus(ctx *fiber.Ctx) error
	GetSessionResults(ctx *fiber.Ctx) error
	GenerateHTMLReport(ctx *fiber.Ctx) error
	CleanupOldSessions(ctx *fiber.Ctx) error
}

type relayController struct {
	service service.IRelayService
}

func NewRelayController(service service.IRelayService) IRelayController {
	return &relayController{service: service}
}

func (c *relayController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/revolutionary-relay")
	h.Post("/start-expert-panel", c.StartExpertPanel)
	h.Post("/start-conference-chain", c.StartConferenceChain)
	h.Post("/stop-session/:session_id", c.StopSession)
	h.Get("/get-session-status/:session_id", c.GetSessionStatus)
	h.Get("/get-session-results/:session_id", c.GetSessionResults)
	h.Get("/generate-html-report/:session_id", c.GenerateHTMLReport)
	h.Post("/cleanup-old-sessions", c.CleanupOldSessions)
}

func (c *relayController) StartExpertPanel(ctx *fiber.Ctx) error {
	var req dto.StartExpertPanelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidInput("Prompt is required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartExpertPanel(req.Prompt)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *relayController) StartConferenceChain(ctx *fiber.Ctx) error {
	var req dto.StartConferenceChainRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidInput("Prompt is required")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartConferenceChain(req.Prompt, req.MaxAgents)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *relayController) StopSession(ctx *fiber.Ctx) error {
	res, err := c.service.Stop(ctx.Params("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *relayController) GetSessionStatus(ctx *fiber.Ctx) error {
	res, err := c.service.Status(ctx.Params("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *relayController) GetSessionResults(ctx *fiber.Ctx) error {
	res, pending, err := c.service.Results(ctx.Params("session_id"))
	if err != nil {
		return err
	}
	if pending != nil {
		return ctx.JSON(pending)
	}

	return ctx.JSON(res)
}

func (c *relayController) GenerateHTMLReport(ctx *fiber.Ctx) error {
	res, err := c.service.HTMLReport(ctx.Params("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *relayController) CleanupOldSessions(ctx *fiber.Ctx) error {
	res, err := c.service.Cleanup()
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
