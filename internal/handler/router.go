package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/middleware"
	"github.com/hr-system-api/internal/policy"
)

// Router настраивает маршруты API
type Router struct {
	mux    *http.ServeMux
	logger *slog.Logger
	tokens *auth.TokenManager
	policy *policy.Policy

	authHandler   *AuthHandler
	empHandler    *EmployeeHandler
	deptHandler   *DepartmentHandler
	posHandler    *PositionHandler
	noticeHandler *NoticeHandler
	recordHandler *RecordHandler
	dashHandler   *DashboardHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	tokens *auth.TokenManager,
	pol *policy.Policy,
	authHandler *AuthHandler,
	empHandler *EmployeeHandler,
	deptHandler *DepartmentHandler,
	posHandler *PositionHandler,
	noticeHandler *NoticeHandler,
	recordHandler *RecordHandler,
	dashHandler *DashboardHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:           http.NewServeMux(),
		logger:        logger,
		tokens:        tokens,
		policy:        pol,
		authHandler:   authHandler,
		empHandler:    empHandler,
		deptHandler:   deptHandler,
		posHandler:    posHandler,
		noticeHandler: noticeHandler,
		recordHandler: recordHandler,
		dashHandler:   dashHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	authenticate := middleware.Authenticate(r.tokens)
	adminOnly := middleware.RequireRole(r.policy, domain.RoleAdmin)

	// Публичные маршруты
	r.mux.HandleFunc("/auth/", r.authRouter)
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Маршруты, требующие аутентификации
	r.mux.Handle("/dashboard", authenticate(http.HandlerFunc(r.dashboardRouter)))
	r.mux.Handle("/employees/", authenticate(http.HandlerFunc(r.employeesRouter)))
	r.mux.Handle("/api/subordinates/", authenticate(http.HandlerFunc(r.subordinatesRouter)))
	r.mux.Handle("/attendance/", authenticate(http.HandlerFunc(r.attendanceRouter)))
	r.mux.Handle("/salaries/", authenticate(http.HandlerFunc(r.salariesRouter)))

	// Управление отделами и должностями доступно только администратору
	r.mux.Handle("/departments/", authenticate(adminOnly(http.HandlerFunc(r.departmentsRouter))))
	r.mux.Handle("/positions/", authenticate(adminOnly(http.HandlerFunc(r.positionsRouter))))

	// Просмотр и публикация объявлений доступны начиная с ранга leader;
	// удаление проверяется политикой владелец-или-администратор без порога ранга
	r.mux.Handle("/notices/", authenticate(http.HandlerFunc(r.noticesRouter)))

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func trimPath(req *http.Request, prefix string) string {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	return strings.Trim(path, "/")
}

// authRouter обрабатывает запросы к /auth/
func (r *Router) authRouter(w http.ResponseWriter, req *http.Request) {
	path := trimPath(req, "/auth")

	if req.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	switch path {
	case "register":
		r.authHandler.Register(w, req)
	case "login":
		r.authHandler.Login(w, req)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

// employeesRouter обрабатывает запросы к /employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	path := trimPath(req, "/employees")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.empHandler.List(w, req)
		case http.MethodPost:
			r.empHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	if path == "managers" {
		if req.Method == http.MethodGet {
			r.empHandler.ListManagerCandidates(w, req)
			return
		}
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	// /employees/{id}
	if !strings.Contains(path, "/") {
		switch req.Method {
		case http.MethodPatch:
			r.empHandler.Update(w, req)
		case http.MethodDelete:
			r.empHandler.Delete(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}

// subordinatesRouter обрабатывает read API /api/subordinates/{managerID}
func (r *Router) subordinatesRouter(w http.ResponseWriter, req *http.Request) {
	path := trimPath(req, "/api/subordinates")

	if path == "" || strings.Contains(path, "/") {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	r.empHandler.ListSubordinates(w, req)
}

// departmentsRouter обрабатывает запросы к /departments/
func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	path := trimPath(req, "/departments")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.deptHandler.List(w, req)
		case http.MethodPost:
			r.deptHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	if !strings.Contains(path, "/") && req.Method == http.MethodDelete {
		r.deptHandler.Delete(w, req)
		return
	}

	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

// positionsRouter обрабатывает запросы к /positions/
func (r *Router) positionsRouter(w http.ResponseWriter, req *http.Request) {
	path := trimPath(req, "/positions")

	if path == "" {
		switch req.Method {
		case http.MethodGet:
			r.posHandler.List(w, req)
		case http.MethodPost:
			r.posHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	if !strings.Contains(path, "/") && req.Method == http.MethodDelete {
		r.posHandler.Delete(w, req)
		return
	}

	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

// noticesRouter обрабатывает запросы к /notices/
func (r *Router) noticesRouter(w http.ResponseWriter, req *http.Request) {
	path := trimPath(req, "/notices")

	if path == "" {
		if !r.policy.CanAccessMinRole(auth.FromContext(req.Context()), domain.RoleLeader) {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}
		switch req.Method {
		case http.MethodGet:
			r.noticeHandler.List(w, req)
		case http.MethodPost:
			r.noticeHandler.Create(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
		return
	}

	if !strings.Contains(path, "/") && req.Method == http.MethodDelete {
		r.noticeHandler.Delete(w, req)
		return
	}

	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

// dashboardRouter обрабатывает запросы к /dashboard
func (r *Router) dashboardRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	r.dashHandler.Overview(w, req)
}

// attendanceRouter обрабатывает запросы к /attendance/
func (r *Router) attendanceRouter(w http.ResponseWriter, req *http.Request) {
	if trimPath(req, "/attendance") != "" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	switch req.Method {
	case http.MethodGet:
		r.recordHandler.ListAttendance(w, req)
	case http.MethodPost:
		r.recordHandler.CreateAttendance(w, req)
	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

// salariesRouter обрабатывает запросы к /salaries/
func (r *Router) salariesRouter(w http.ResponseWriter, req *http.Request) {
	if trimPath(req, "/salaries") != "" {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	switch req.Method {
	case http.MethodGet:
		r.recordHandler.ListSalaries(w, req)
	case http.MethodPost:
		r.recordHandler.CreateSalary(w, req)
	default:
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}
