package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/locacare/backend/internal/middleware"
	"github.com/locacare/backend/internal/service"
)

type Handler struct {
	userService    service.UserService
	partnerService service.PartnerService
	rentalService  service.RentalService
	balanceService service.BalanceService
	clientService  service.ClientService
	chairService   service.ChairService
	planService    service.PlanService
	secretKey      string
}

func NewHandler(
	userService service.UserService,
	partnerService service.PartnerService,
	rentalService service.RentalService,
	balanceService service.BalanceService,
	clientService service.ClientService,
	chairService service.ChairService,
	planService service.PlanService,
	secretKey string,
) *Handler {
	return &Handler{
		userService:    userService,
		partnerService: partnerService,
		rentalService:  rentalService,
		balanceService: balanceService,
		clientService:  clientService,
		chairService:   chairService,
		planService:    planService,
		secretKey:      secretKey,
	}
}

type RouterOptions struct {
	IntakeRate  rate.Limit
	IntakeBurst int
}

func NewRouter(handler *Handler, secretKey string, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
	})

	intakeLimiter := middleware.NewUserRateLimiter(opts.IntakeRate, opts.IntakeBurst)
	r.Route("/api/public", func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(intakeLimiter))
		r.Post("/leads", handler.CreateLead)
		r.Get("/plans", handler.ListPublicPlans)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))

		r.Route("/api/partner", func(r chi.Router) {
			r.Get("/balance", handler.GetBalance)
			r.Get("/withdrawals", handler.GetWithdrawals)
			r.Post("/withdrawals", handler.SubmitWithdrawal)
		})

		r.Route("/api/clients", func(r chi.Router) {
			r.Post("/", handler.CreateClient)
			r.Get("/", handler.ListClients)
			r.Get("/{id}", handler.GetClient)
			r.Put("/{id}", handler.UpdateClient)
		})

		r.Route("/api/chairs", func(r chi.Router) {
			r.Post("/", handler.CreateChair)
			r.Get("/", handler.ListChairs)
			r.Get("/{id}", handler.GetChair)
			r.Put("/{id}", handler.UpdateChair)
		})

		r.Route("/api/plans", func(r chi.Router) {
			r.Post("/", handler.CreatePlan)
			r.Get("/", handler.ListPlans)
			r.Get("/{id}", handler.GetPlan)
			r.Put("/{id}", handler.UpdatePlan)
		})

		r.Route("/api/rentals", func(r chi.Router) {
			r.Post("/", handler.CreateRental)
			r.Get("/", handler.ListRentals)
			r.Get("/{id}", handler.GetRental)
			r.Patch("/{id}/status", handler.UpdateRentalStatus)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/withdrawals", handler.ListWithdrawals)
			r.Post("/withdrawals/{id}/decision", handler.DecideWithdrawal)
			r.Post("/partners", handler.CreatePartner)
			r.Get("/partners", handler.ListPartners)
			r.Put("/users/{id}/password", handler.UpdatePassword)
			r.Delete("/users/{id}", handler.DeleteUser)
		})
	})

	return r
}
