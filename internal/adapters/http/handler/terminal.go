package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/attendance"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/completion"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/operator"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/pullqueue"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/worklog"
)

// 端末ファームウェアと合意済みのアクション語彙です。変更できません。
const (
	actionPunch        = "PONTO"
	actionToggleTask   = "TOGGLE_TAREFA"
	actionStartPause   = "REGISTAR_PAUSA"
	actionCloseStation = "FECHAR_ESTACAO"
	actionNextOrder    = "GET_NEXT_OP"
)

// terminalRequest は RFID 端末が送信する固定フォーマットです。
// フィールド名はファームウェア側で焼き込まれているため変更できません。
type terminalRequest struct {
	DeviceID     string `json:"device_id"`
	Action       string `json:"action"`
	OperadorRFID string `json:"operador_rfid"`
	EstacaoID    string `json:"estacao_id,omitempty"`
	OPID         string `json:"op_id,omitempty"`
	MotivoPausa  string `json:"motivo_pausa,omitempty"`
}

// terminalResponse は端末へ返す固定フォーマットです。display と
// display_2 は端末の小型ディスプレイ 1 行分で、折り返しはされません。
type terminalResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Display  string `json:"display"`
	Display2 string `json:"display_2,omitempty"`
}

// Dependencies は TerminalHandler の依存一式です。
type Dependencies struct {
	Logger      *log.Logger
	Operators   operator.UseCase
	Attendance  attendance.UseCase
	Worklog     worklog.UseCase
	Completions completion.UseCase
	Queue       pullqueue.UseCase
}

// TerminalHandler は端末イベントエンドポイントの実装です。イベントは
// まずタグ解決を通り、アクションごとに 1 つのユースケースへ振り分け
// られます。接続状態やセッションは一切保持しません。
type TerminalHandler struct {
	logger      *log.Logger
	operators   operator.UseCase
	attendance  attendance.UseCase
	worklog     worklog.UseCase
	completions completion.UseCase
	queue       pullqueue.UseCase
}

// NewTerminalHandler は TerminalHandler を生成します。
func NewTerminalHandler(d Dependencies) *TerminalHandler {
	return &TerminalHandler{
		logger:      d.Logger,
		operators:   d.Operators,
		attendance:  d.Attendance,
		worklog:     d.Worklog,
		completions: d.Completions,
		queue:       d.Queue,
	}
}

// Register はルートを ServeMux に登録します。
func (h *TerminalHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/terminal_event", h.handleTerminalEvent)
}

func (h *TerminalHandler) handleTerminalEvent(w http.ResponseWriter, r *http.Request) {
	var req terminalRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeTerminal(w, http.StatusBadRequest, terminalResponse{
			Error:   "bad_json",
			Display: displayDataError,
		})
		return
	}

	if strings.TrimSpace(req.DeviceID) == "" || strings.TrimSpace(req.Action) == "" {
		writeTerminal(w, http.StatusBadRequest, terminalResponse{
			Error:   "missing_fields",
			Display: displayDataError,
		})
		return
	}

	op, err := h.operators.ResolveTag(r.Context(), operator.ResolveTagInput{TagID: req.OperadorRFID})
	if err != nil {
		// Unknown vs ineligible is an internal distinction; the terminal
		// only ever sees an access denial.
		h.logger.Printf("terminal_event device=%s identity rejected: %v", req.DeviceID, err)
		status, resp := mapIdentityError(err)
		writeTerminal(w, status, resp)
		return
	}

	switch req.Action {
	case actionPunch:
		h.handlePunch(w, r, req, op)
	case actionToggleTask:
		h.handleToggleTask(w, r, req, op)
	case actionStartPause:
		h.handleStartPause(w, r, req, op)
	case actionCloseStation:
		h.handleCloseStation(w, r, req, op)
	case actionNextOrder:
		h.handleNextOrder(w, r, req)
	default:
		writeTerminal(w, http.StatusBadRequest, terminalResponse{
			Error:   "unknown_action",
			Display: displayDataError,
		})
	}
}

func (h *TerminalHandler) handlePunch(w http.ResponseWriter, r *http.Request, req terminalRequest, op *operator.Operator) {
	event, err := h.attendance.RecordPunch(r.Context(), attendance.RecordPunchInput{OperatorID: op.ID})
	if err != nil {
		h.fail(w, req, err)
		return
	}

	display := displayEntrance
	if event.Kind == attendance.KindExit {
		display = displayExit
	}

	writeTerminal(w, http.StatusOK, terminalResponse{
		Success:  true,
		Display:  display,
		Display2: fitDisplay(strings.ToUpper(op.DisplayName)),
	})
}

func (h *TerminalHandler) handleToggleTask(w http.ResponseWriter, r *http.Request, req terminalRequest, op *operator.Operator) {
	if strings.TrimSpace(req.OPID) == "" || strings.TrimSpace(req.EstacaoID) == "" {
		writeTerminal(w, http.StatusBadRequest, terminalResponse{
			Error:   "missing_fields",
			Display: displayDataError,
		})
		return
	}

	result, err := h.worklog.ToggleWork(r.Context(), worklog.ToggleWorkInput{
		OperatorID: op.ID,
		OrderID:    req.OPID,
		StationID:  req.EstacaoID,
	})
	if err != nil {
		h.fail(w, req, err)
		return
	}

	display := displayTaskStarted
	if result.Transition == worklog.TransitionClosed {
		display = displayTaskClosed
	}

	writeTerminal(w, http.StatusOK, terminalResponse{Success: true, Display: display})
}

func (h *TerminalHandler) handleStartPause(w http.ResponseWriter, r *http.Request, req terminalRequest, op *operator.Operator) {
	in := worklog.StartPauseInput{
		OperatorID: op.ID,
		Reason:     worklog.ParseReason(req.MotivoPausa),
	}
	if station := strings.TrimSpace(req.EstacaoID); station != "" {
		in.StationID = &station
	}

	pause, err := h.worklog.StartPause(r.Context(), in)
	if err != nil {
		h.fail(w, req, err)
		return
	}

	writeTerminal(w, http.StatusOK, terminalResponse{
		Success:  true,
		Display:  displayPause,
		Display2: strings.ToUpper(string(pause.Reason)),
	})
}

func (h *TerminalHandler) handleCloseStation(w http.ResponseWriter, r *http.Request, req terminalRequest, op *operator.Operator) {
	if strings.TrimSpace(req.OPID) == "" || strings.TrimSpace(req.EstacaoID) == "" {
		writeTerminal(w, http.StatusBadRequest, terminalResponse{
			Error:   "missing_fields",
			Display: displayDataError,
		})
		return
	}

	closed, err := h.completions.CloseStation(r.Context(), completion.CloseStationInput{
		OrderID:    req.OPID,
		StationID:  req.EstacaoID,
		OperatorID: op.ID,
	})
	if err != nil {
		h.fail(w, req, err)
		return
	}

	writeTerminal(w, http.StatusOK, terminalResponse{
		Success:  true,
		Display:  displayStationClosed,
		Display2: closed.CompletedAt.Format("15:04"),
	})
}

func (h *TerminalHandler) handleNextOrder(w http.ResponseWriter, r *http.Request, req terminalRequest) {
	if strings.TrimSpace(req.EstacaoID) == "" {
		writeTerminal(w, http.StatusBadRequest, terminalResponse{
			Error:   "missing_fields",
			Display: displayDataError,
		})
		return
	}

	result, err := h.queue.NextOrderFor(r.Context(), pullqueue.NextOrderInput{StationID: req.EstacaoID})
	if err != nil {
		h.fail(w, req, err)
		return
	}

	// An empty queue is an idle state for the terminal, not a failure.
	if result.Empty() {
		writeTerminal(w, http.StatusOK, terminalResponse{Success: true, Display: displayQueueEmpty})
		return
	}

	writeTerminal(w, http.StatusOK, terminalResponse{
		Success:  true,
		Display:  displayNextOrder,
		Display2: fitDisplay(result.Order.OrderNumber),
	})
}

// fail は集約されたエラー変換です。内訳はログにだけ残し、端末には
// 固定フォーマット以外を決して漏らしません。
func (h *TerminalHandler) fail(w http.ResponseWriter, req terminalRequest, err error) {
	status, resp := mapDomainError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Printf("terminal_event device=%s action=%s error: %v", req.DeviceID, req.Action, err)
	}
	writeTerminal(w, status, resp)
}

func writeTerminal(w http.ResponseWriter, status int, resp terminalResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// maxDisplayRunes は端末ディスプレイの 1 行分の幅です。
const maxDisplayRunes = 16

func fitDisplay(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDisplayRunes {
		return s
	}
	return string(runes[:maxDisplayRunes])
}
