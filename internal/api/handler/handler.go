package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	sqsadapter "queue.service/internal/adapters/sqs"
	"queue.service/internal/plugin/sqsplugin"
	"queue.service/internal/ports"
	"queue.service/internal/server"
	"queue.service/pkg/metrics"
)

// QueueHandler serves send and receive requests through the queue decorated on the server.
type QueueHandler struct {
	Metrics *metrics.Metrics
}

type SendRequest struct {
	QueueURL string           `json:"queueUrl"`
	Body     string           `json:"body"`
	Options  sqsadapter.Extra `json:"options,omitempty"`
}

type SendResponse struct {
	MessageID        string `json:"messageId"`
	MD5OfMessageBody string `json:"md5OfMessageBody,omitempty"`
	SequenceNumber   string `json:"sequenceNumber,omitempty"`
}

type ReceiveRequest struct {
	QueueURL string           `json:"queueUrl"`
	Options  sqsadapter.Extra `json:"options,omitempty"`
}

type Message struct {
	MessageID         string                                 `json:"messageId"`
	ReceiptHandle     string                                 `json:"receiptHandle"`
	Body              string                                 `json:"body"`
	Attributes        map[string]string                      `json:"attributes,omitempty"`
	MessageAttributes map[string]types.MessageAttributeValue `json:"messageAttributes,omitempty"`
}

type ReceiveResponse struct {
	Messages []Message `json:"messages"`
}

func (h *QueueHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	queue, ok := queueFrom(r)
	if !ok {
		http.Error(w, "Queue is not available", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	out, err := queue.Send(r.Context(), req.QueueURL, req.Body, req.Options)
	h.Metrics.Observe(metrics.OperationSend, start, err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, sendResponse(out))
}

func (h *QueueHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req ReceiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	queue, ok := queueFrom(r)
	if !ok {
		http.Error(w, "Queue is not available", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	out, err := queue.Receive(r.Context(), req.QueueURL, req.Options)
	h.Metrics.Observe(metrics.OperationReceive, start, err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, receiveResponse(out))
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Service is operational."))
}

func queueFrom(r *http.Request) (ports.Queue, bool) {
	v, ok := server.FromContext(r.Context()).Get(sqsplugin.DecorationName)
	if !ok {
		return nil, false
	}

	queue, ok := v.(ports.Queue)
	return queue, ok
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalidParams smithy.InvalidParamsError

	switch {
	case errors.Is(err, sqsadapter.ErrMissingParameters):
		badRequest(w, r, err, sqsadapter.ErrMissingParameters.Error())
	case errors.Is(err, sqsadapter.ErrInvalidOptions):
		badRequest(w, r, err, "Invalid options")
	case errors.As(err, &invalidParams):
		badRequest(w, r, err, "Invalid request parameters")
	default:
		http.Error(w, "Queue service error", http.StatusBadGateway)
	}
}

// badRequest keeps the error details in the log and answers with a stable message.
func badRequest(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.Ctx(r.Context()).Debug().Err(err).Msg("Rejected queue request")
	http.Error(w, msg, http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
	}
}

func sendResponse(out *sqs.SendMessageOutput) SendResponse {
	if out == nil {
		return SendResponse{}
	}

	return SendResponse{
		MessageID:        aws.ToString(out.MessageId),
		MD5OfMessageBody: aws.ToString(out.MD5OfMessageBody),
		SequenceNumber:   aws.ToString(out.SequenceNumber),
	}
}

func receiveResponse(out *sqs.ReceiveMessageOutput) ReceiveResponse {
	resp := ReceiveResponse{Messages: []Message{}}
	if out == nil {
		return resp
	}

	for _, m := range out.Messages {
		resp.Messages = append(resp.Messages, Message{
			MessageID:         aws.ToString(m.MessageId),
			ReceiptHandle:     aws.ToString(m.ReceiptHandle),
			Body:              aws.ToString(m.Body),
			Attributes:        m.Attributes,
			MessageAttributes: m.MessageAttributes,
		})
	}

	return resp
}
