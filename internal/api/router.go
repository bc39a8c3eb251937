package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	assignProfessionalsHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/assign_professionals"
	closeDraftHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/close_draft"
	deleteRecordHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/delete_record"
	getInquiryBoardHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/get_inquiry_board"
	getRecordsHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/get_records"
	getSessionHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/get_session"
	getShopTimingsHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/get_shop_timings"
	listAuditHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/list_audit"
	listFamiliesHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/list_families"
	loginHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/logout"
	openDraftHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/open_draft"
	refreshRecordsHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/refresh_records"
	setShopTimingHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/set_shop_timing"
	submitDraftHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/SMC-AdminPanel/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-AdminPanel/internal/api/middleware"
	"github.com/m04kA/SMC-AdminPanel/internal/service/session"
	assignProfessionalsUC "github.com/m04kA/SMC-AdminPanel/internal/usecase/assign_professionals"
	inquiryBoardUC "github.com/m04kA/SMC-AdminPanel/internal/usecase/inquiry_board"
	shopTimingUC "github.com/m04kA/SMC-AdminPanel/internal/usecase/shop_timing"
	"github.com/m04kA/SMC-AdminPanel/internal/usecase/workspace"
	"github.com/m04kA/SMC-AdminPanel/pkg/logger"
	"github.com/m04kA/SMC-AdminPanel/pkg/metrics"
)

// Deps зависимости HTTP API
type Deps struct {
	Authenticator session.Authenticator
	Registry      *workspace.Registry
	Sessions      *middleware.SessionManager
	Audit         listAuditHandler.AuditRepository
	Logger        *logger.Logger

	// Metrics nil, если метрики выключены
	Metrics     *metrics.Metrics
	MetricsPath string

	AllowedOrigins []string
}

// NewRouter собирает маршруты admin API
func NewRouter(d Deps) http.Handler {
	log := d.Logger

	// Инициализируем use cases
	inquiryBoardUseCase := inquiryBoardUC.NewUseCase(log)
	shopTimingUseCase := shopTimingUC.NewUseCase(log)
	assignProfessionalsUseCase := assignProfessionalsUC.NewUseCase(log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(d.Authenticator, d.Registry, d.Sessions, log)
	logout := logoutHandler.NewHandler(d.Registry, d.Sessions, log)
	getSession := getSessionHandler.NewHandler(log)
	listFamilies := listFamiliesHandler.NewHandler(log)
	getRecords := getRecordsHandler.NewHandler(log)
	refreshRecords := refreshRecordsHandler.NewHandler(log)
	deleteRecord := deleteRecordHandler.NewHandler(log)
	openDraft := openDraftHandler.NewHandler(log)
	updateDraft := updateDraftHandler.NewHandler(log)
	closeDraft := closeDraftHandler.NewHandler(log)
	submitDraft := submitDraftHandler.NewHandler(log)
	getInquiryBoard := getInquiryBoardHandler.NewHandler(inquiryBoardUseCase, log)
	getShopTimings := getShopTimingsHandler.NewHandler(shopTimingUseCase, log)
	setShopTiming := setShopTimingHandler.NewHandler(shopTimingUseCase, log)
	assignProfessionals := assignProfessionalsHandler.NewHandler(assignProfessionalsUseCase, log)
	listAudit := listAuditHandler.NewHandler(d.Audit, log)

	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
		r.Handle(d.MetricsPath, d.Metrics.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют cookie сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(d.Sessions, d.Registry, log))

	// --- Сессия ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/session", getSession.Handle).Methods(http.MethodGet)

	// --- Разделы и записи ---
	protected.HandleFunc("/families", listFamilies.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/families/{family}/records", getRecords.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/families/{family}/records/refresh", refreshRecords.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/families/{family}/records/{id}", deleteRecord.Handle).Methods(http.MethodDelete)

	// --- Форма ---
	protected.HandleFunc("/families/{family}/draft", openDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/families/{family}/draft", updateDraft.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/families/{family}/draft", closeDraft.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/families/{family}/draft/submit", submitDraft.Handle).Methods(http.MethodPost)

	// --- Специализированные экраны ---
	protected.HandleFunc("/inquiries/board", getInquiryBoard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/shop-timings", getShopTimings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/shop-timings/{day}", setShopTiming.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}/professionals", assignProfessionals.Handle).Methods(http.MethodPut)

	// --- Журнал ---
	protected.HandleFunc("/audit", listAudit.Handle).Methods(http.MethodGet)

	if len(d.AllowedOrigins) == 0 {
		return r
	}

	// SPA обращается к API с другого origin и передает cookie сессии
	return cors.New(cors.Options{
		AllowedOrigins:   d.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)
}
