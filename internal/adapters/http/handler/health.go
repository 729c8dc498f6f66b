package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

// Pinger はストア疎通確認の抽象です。pgxpool.Pool が満たします。
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler はデプロイ環境のヘルスプローブ向けエンドポイントです。
// 端末のワイヤ契約には含まれません。
type HealthHandler struct {
	logger *log.Logger
	db     Pinger
}

// NewHealthHandler は HealthHandler を生成します。
func NewHealthHandler(logger *log.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{logger: logger, db: db}
}

// Register はルートを ServeMux に登録します。
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/healthz", h.handleHealthz)
}

func (h *HealthHandler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Printf("healthz store ping failed: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
