package handler

import (
	"errors"
	"net/http"

	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/completion"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/operator"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/worklog"
)

// 端末ディスプレイ向けの表示文字列です。1 行 16 文字に収めます。
const (
	displayEntrance      = "ENTRADA"
	displayExit          = "SAIDA"
	displayTaskStarted   = "TAREFA INICIADA"
	displayTaskClosed    = "TAREFA TERMINADA"
	displayPause         = "PAUSA REGISTADA"
	displayStationClosed = "ESTACAO FECHADA"
	displayAlreadyClosed = "JA ENCERRADA"
	displayQueueEmpty    = "SEM ORDENS"
	displayNextOrder     = "PROXIMA OP"
	displayUnknownTag    = "NAO RECONHECIDO"
	displayAccessDenied  = "ACESSO NEGADO"
	displayDataError     = "DADOS INVALIDOS"
	displayConflict      = "REPETIR LEITURA"
	displaySystemError   = "ERRO SISTEMA"
)

// mapIdentityError はタグ解決の失敗を応答へ変換します。
func mapIdentityError(err error) (int, terminalResponse) {
	switch {
	case errors.Is(err, operator.ErrTagRequired):
		return http.StatusBadRequest, terminalResponse{Error: "missing_fields", Display: displayDataError}
	case errors.Is(err, operator.ErrUnknownTag):
		return http.StatusForbidden, terminalResponse{Error: "unknown_tag", Display: displayUnknownTag}
	case errors.Is(err, operator.ErrOperatorIneligible):
		return http.StatusForbidden, terminalResponse{Error: "access_denied", Display: displayAccessDenied}
	default:
		return http.StatusInternalServerError, terminalResponse{Error: "internal_error", Display: displaySystemError}
	}
}

// mapDomainError はユースケースの失敗を応答へ変換します。ドメイン上の
// 競合や重複は端末が再ポーリングすればよい事象で、障害としては扱いません。
func mapDomainError(err error) (int, terminalResponse) {
	switch {
	case errors.Is(err, worklog.ErrOperatorRequired),
		errors.Is(err, worklog.ErrOrderRequired),
		errors.Is(err, worklog.ErrStationRequired),
		errors.Is(err, worklog.ErrUnknownReference),
		errors.Is(err, completion.ErrOrderRequired),
		errors.Is(err, completion.ErrStationRequired),
		errors.Is(err, completion.ErrOperatorRequired),
		errors.Is(err, completion.ErrUnknownReference):
		return http.StatusBadRequest, terminalResponse{Error: "invalid_data", Display: displayDataError}
	case errors.Is(err, worklog.ErrStateConflict):
		return http.StatusConflict, terminalResponse{Error: "state_conflict", Display: displayConflict}
	case errors.Is(err, completion.ErrAlreadyClosed):
		return http.StatusConflict, terminalResponse{Error: "already_closed", Display: displayAlreadyClosed}
	default:
		return http.StatusInternalServerError, terminalResponse{Error: "internal_error", Display: displaySystemError}
	}
}
