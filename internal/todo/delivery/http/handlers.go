package http

import (
	"github.com/gin-gonic/gin"

	"ai-todo-backend/internal/middleware"
	"ai-todo-backend/pkg/response"
)

const msgMalformedBody = "요청 형식이 올바르지 않습니다."

// ParseTodo godoc
// @Summary     Parse natural language into structured todos
// @Description Turns Korean free text into one or more structured todo drafts. Comma-separated input yields a batch.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Natural language input"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Rejected input"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Generation failure"
// @Router      /api/v1/parse-todo [POST]
func (h *handler) ParseTodo(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	output, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	if output.Multiple {
		response.OKItems(c, output.Items)
		return
	}
	response.OK(c, output.Draft())
}

// AnalyzeTodos godoc
// @Summary     Analyze a todo collection
// @Description Produces an AI summary, urgent-task list, insights and recommendations for the given todos.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Todos and analysis period (today|week)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid todos or period"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Generation failure"
// @Router      /api/v1/analyze-todos [POST]
func (h *handler) AnalyzeTodos(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	output, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	response.OK(c, output)
}

// Create godoc
// @Summary     Create a todo
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	created, err := h.repo.CreateTodo(ctx, sc, req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "repo.CreateTodo: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	response.OK(c, created)
}

// List godoc
// @Summary     List todos
// @Tags        Todo
// @Produce     json
// @Param       completed  query bool   false "Filter by completion"
// @Param       due_before query string false "RFC3339 upper bound on due date"
// @Param       limit      query int    false "Page size (default: 100)"
// @Param       offset     query int    false "Page offset"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	todos, err := h.repo.ListTodos(ctx, sc, req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "repo.ListTodos: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	response.OKItems(c, todos)
}

// Detail godoc
// @Summary     Get todo detail
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	found, err := h.repo.GetTodo(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "repo.GetTodo: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	response.OK(c, found)
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update; absent fields are left untouched.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	updated, err := h.repo.UpdateTodo(ctx, sc, id, req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "repo.UpdateTodo: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	response.OK(c, updated)
}

// Delete godoc
// @Summary     Delete a todo
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, codeInvalidInput, msgMalformedBody)
		return
	}

	if err := h.repo.DeleteTodo(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "repo.DeleteTodo: %v", err)
		status, code, msg := h.mapError(err)
		response.Error(c, status, code, msg)
		return
	}

	response.OK(c, gin.H{"deleted": true})
}
