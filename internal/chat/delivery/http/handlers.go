package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nova-assistant/pkg/response"
)

// CreateSession godoc
// @Summary     Create a conversation session
// @Description Opens a new conversation session and returns its identifier.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} createSessionResp
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	sess := h.store.Create()
	response.OK(c, createSessionResp{ID: sess.ID()})
}

// DetailSession godoc
// @Summary     Get session detail
// @Description Returns the ordered message log and the session flags.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) DetailSession(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "store.Get: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// SubmitMessage godoc
// @Summary     Submit a typed message
// @Description Accepts a user message. The assistant reply lands in the
// @Description session log asynchronously; poll the detail endpoint for it.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Session ID"
// @Param       body body submitReq true "Message text"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - a reply is pending"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SubmitMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := sess.Submit(ctx, req.Text, false); err != nil {
		h.l.Warnf(ctx, "session.Submit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// StartVoice godoc
// @Summary     Submit a voice utterance
// @Description Transcribes the audio and submits the transcript to the
// @Description session as a voice turn. Recognition runs in the background.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Session ID"
// @Param       body body voiceReq true "Base64-encoded audio"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request - speech unavailable"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already listening"
// @Router      /api/v1/chat/sessions/{id}/voice [POST]
func (h *handler) StartVoice(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	audio, err := req.decode()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.voice.Start(ctx, sess, audio); err != nil {
		h.l.Warnf(ctx, "voice.Start: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// StopVoice godoc
// @Summary     Stop voice capture
// @Description Cancels the in-flight recognition for the session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - not listening"
// @Router      /api/v1/chat/sessions/{id}/voice [DELETE]
func (h *handler) StopVoice(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.voice.Stop(sess); err != nil {
		h.l.Warnf(ctx, "voice.Stop: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSessionResp(sess))
}

// Speech godoc
// @Summary     Fetch the spoken form of an assistant reply
// @Description Returns the synthesized audio cached for the message, if the
// @Description turn was spoken. Replies to typed turns have no audio.
// @Tags        Chat
// @Produce     octet-stream
// @Param       id        path string true "Session ID"
// @Param       messageID path string true "Assistant message ID"
// @Success     200 {string} binary "Audio bytes"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/chat/sessions/{id}/speech/{messageID} [GET]
func (h *handler) Speech(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	audio, ok := sess.SpokenAudio(c.Param("messageID"))
	if !ok {
		h.respondError(c, ErrNoSpokenAudio)
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", audio)
}
