package http

import (
	"encoding/base64"
	"errors"
	"time"

	"nova-assistant/internal/model"
	"nova-assistant/internal/session"
)

// --- Request DTOs ---

type submitReq struct {
	Text string `json:"text"`
}

func (r submitReq) validate() error { return nil }

type voiceReq struct {
	Audio string `json:"audio" binding:"required"`
}

func (r voiceReq) validate() error {
	if r.Audio == "" {
		return errors.New("audio is required")
	}
	return nil
}

func (r voiceReq) decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(r.Audio)
}

// --- Response DTOs ---

type messageResp struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newMessageResp(msg model.Message) messageResp {
	return messageResp{
		ID:        msg.ID,
		Role:      string(msg.Role),
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

type sessionResp struct {
	ID               string        `json:"id"`
	State            string        `json:"state"`
	AwaitingResponse bool          `json:"awaiting_response"`
	Listening        bool          `json:"listening"`
	Messages         []messageResp `json:"messages"`
}

func newSessionResp(sess *session.Session) sessionResp {
	msgs := sess.Messages()
	out := make([]messageResp, len(msgs))
	for i, msg := range msgs {
		out[i] = newMessageResp(msg)
	}
	return sessionResp{
		ID:               sess.ID(),
		State:            string(sess.State()),
		AwaitingResponse: sess.AwaitingResponse(),
		Listening:        sess.Listening(),
		Messages:         out,
	}
}

type createSessionResp struct {
	ID string `json:"id"`
}
