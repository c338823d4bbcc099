package api

import (
	_ "github.com/omnistake/vault-adapter-service/docs"
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/unstake", registerHandler(handlers.ScheduleUnstake))
	r.Get("/v1/unstake", registerHandler(handlers.GetUnstakeRequest))
	r.Post("/v1/unstake/cancel", registerHandler(handlers.CancelUnstake))
	r.Post("/v1/withdrawal", registerHandler(handlers.ScheduleWithdrawal))
	r.Get("/v1/withdrawal", registerHandler(handlers.GetWithdrawRequest))
	r.Post("/v1/withdrawal/cancel", registerHandler(handlers.CancelWithdrawal))

	// Hooks called by the vault itself, not by depositors
	r.Post("/v1/hooks/deposit", registerHandler(handlers.DepositHook))
	r.Post("/v1/hooks/withdraw", registerHandler(handlers.WithdrawHook))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
