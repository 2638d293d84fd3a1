package http

import (
	"github.com/gin-gonic/gin"

	"nextact/pkg/response"
)

// Classify godoc
// @Summary     Classify a task
// @Description Assigns a category to a Vietnamese task text and extracts its deadline, if any.
// @Tags        NextAct
// @Accept      json
// @Produce     json
// @Param       body body     classifyReq true "Task text"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request - empty or invalid text"
// @Failure     500  {object} response.Resp "Model not loaded"
// @Router      /api/v1/nextact/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	intent, err := h.uc.Infer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Infer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClassifyResp(intent))
}

// Chat godoc
// @Summary     Ask the task assistant
// @Description Sends a question about a task, with its title, description and due date, to the assistant.
// @Tags        NextAct
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Task context and question"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Assistant not configured"
// @Failure     502  {object} response.Resp "Assistant request failed"
// @Router      /api/v1/nextact/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(out))
}

// Models godoc
// @Summary     Describe the loaded model
// @Description Returns the label set and training metadata of the loaded model artifact.
// @Tags        NextAct
// @Produce     json
// @Success     200 {object} modelsResp
// @Failure     500 {object} response.Resp "Model not loaded"
// @Router      /api/v1/nextact/models [GET]
func (h *handler) Models(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := h.uc.ModelInfo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ModelInfo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newModelsResp(info))
}
