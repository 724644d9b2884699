package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/dto"
	"github.com/hr-system-api/internal/handler"
	"github.com/hr-system-api/internal/policy"
	"github.com/hr-system-api/internal/repository"
	"github.com/hr-system-api/internal/service"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	srv   *httptest.Server
	repos repository.Repos
}

func setupServer(t *testing.T) *testEnv {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&domain.Account{},
		&domain.Department{},
		&domain.Position{},
		&domain.Employee{},
		&domain.Attendance{},
		&domain.Salary{},
		&domain.Notice{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := repository.NewRepos(db)
	tx := repository.NewTransactor(db)
	pol := policy.New(domain.DefaultRoleRanks())
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	authService := service.NewAuthService(repos.Accounts, tx, tokens)
	empService := service.NewEmployeeService(repos.Employees, repos.Departments, repos.Positions, repos.Accounts, tx, pol)
	deptService := service.NewDepartmentService(repos.Departments, tx)
	posService := service.NewPositionService(repos.Positions, tx)
	noticeService := service.NewNoticeService(repos.Notices, pol)
	attService := service.NewAttendanceService(repos.Attendance, repos.Employees)
	salService := service.NewSalaryService(repos.Salaries, repos.Employees)
	dashService := service.NewDashboardService(repos.Employees, repos.Departments, repos.Positions, repos.Attendance, repos.Notices)

	router := handler.NewRouter(
		tokens,
		pol,
		handler.NewAuthHandler(authService, logger),
		handler.NewEmployeeHandler(empService, logger),
		handler.NewDepartmentHandler(deptService, logger),
		handler.NewPositionHandler(posService, logger),
		handler.NewNoticeHandler(noticeService, logger),
		handler.NewRecordHandler(attService, salService, logger),
		handler.NewDashboardHandler(dashService, logger),
		logger,
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, repos: repos}
}

// seedAccount создаёт учётную запись напрямую, минуя регистрацию
func (e *testEnv) seedAccount(t *testing.T, username, password, email, role string) *domain.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	acc := &domain.Account{Username: username, Password: string(hash), Email: email, Role: role}
	if err := e.repos.Accounts.Create(context.Background(), acc); err != nil {
		t.Fatalf("failed to seed account %s: %v", username, err)
	}
	return acc
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: username, Password: password})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}

	var body dto.LoginResponse
	decodeInto(t, resp, &body)
	return body.Token
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	e.seedAccount(t, "admin", "admin123", "admin@company.com", domain.RoleAdmin)
	return e.login(t, "admin", "admin123")
}

func (e *testEnv) createEmployee(t *testing.T, token string, req dto.CreateEmployeeRequest) dto.EmployeeResponse {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/employees/", token, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create employee %s: status %d", req.Name, resp.StatusCode)
	}

	var emp dto.EmployeeResponse
	decodeInto(t, resp, &emp)
	return emp
}

func TestHealth(t *testing.T) {
	e := setupServer(t)

	resp := e.request(t, http.MethodGet, "/health", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}
}

func TestAuth_Required(t *testing.T) {
	e := setupServer(t)

	resp := e.request(t, http.MethodGet, "/employees/", "", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", resp.StatusCode)
	}

	resp = e.request(t, http.MethodGet, "/employees/", "garbage-token", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", resp.StatusCode)
	}
}

func TestRegister_InternFlow(t *testing.T) {
	e := setupServer(t)

	resp := e.request(t, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Username: "carol",
		Password: "secret123",
		Email:    "carol@company.com",
		Name:     "Carol",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", resp.StatusCode)
	}

	resp = e.request(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "carol", Password: "secret123"})
	var login dto.LoginResponse
	decodeInto(t, resp, &login)
	if login.Role != domain.RoleIntern {
		t.Errorf("new account role = %q, want %q", login.Role, domain.RoleIntern)
	}

	// Стажёру закрыты административные разделы
	for _, path := range []string{"/departments/", "/positions/", "/notices/"} {
		resp := e.request(t, http.MethodGet, path, login.Token, nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("GET %s as intern: status = %d, want 403", path, resp.StatusCode)
		}
	}

	// Список сотрудников доступен, но без подчинённых он пуст
	resp = e.request(t, http.MethodGet, "/employees/", login.Token, nil)
	var employees []dto.EmployeeResponse
	decodeInto(t, resp, &employees)
	if len(employees) != 0 {
		t.Errorf("intern without subordinates must see empty list, got %d", len(employees))
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	e := setupServer(t)

	req := dto.RegisterRequest{Username: "carol", Password: "secret123", Email: "carol@company.com", Name: "Carol"}
	resp := e.request(t, http.MethodPost, "/auth/register", "", req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: status = %d", resp.StatusCode)
	}

	req.Email = "carol2@company.com"
	resp = e.request(t, http.MethodPost, "/auth/register", "", req)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate register: status = %d, want 409", resp.StatusCode)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	e := setupServer(t)
	e.seedAccount(t, "bob", "right-pass", "bob@company.com", domain.RoleStaff)

	resp := e.request(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "bob", Password: "wrong"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", resp.StatusCode)
	}
}

func TestDepartments_AdminManagement(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	resp := e.request(t, http.MethodPost, "/departments/", token, dto.CreateDepartmentRequest{Name: "Engineering"})
	var dept dto.DepartmentResponse
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create department: status = %d, want 201", resp.StatusCode)
	}
	decodeInto(t, resp, &dept)

	// Повторное имя отклоняется
	resp = e.request(t, http.MethodPost, "/departments/", token, dto.CreateDepartmentRequest{Name: "Engineering"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate department: status = %d, want 409", resp.StatusCode)
	}

	// Отдел с сотрудниками удалить нельзя
	emp := e.createEmployee(t, token, dto.CreateEmployeeRequest{
		Name:         "Alice",
		Email:        "alice@company.com",
		Role:         domain.RoleStaff,
		DepartmentID: &dept.ID,
	})

	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/departments/%d", dept.ID), token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("delete department in use: status = %d, want 409", resp.StatusCode)
	}

	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/employees/%d", emp.ID), token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete employee: status = %d, want 204", resp.StatusCode)
	}

	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/departments/%d", dept.ID), token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete empty department: status = %d, want 204", resp.StatusCode)
	}
}

func TestPositions_DeleteGuard(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	resp := e.request(t, http.MethodPost, "/positions/", token, dto.CreatePositionRequest{Title: "Engineer", Level: "E1"})
	var pos dto.PositionResponse
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create position: status = %d, want 201", resp.StatusCode)
	}
	decodeInto(t, resp, &pos)

	e.createEmployee(t, token, dto.CreateEmployeeRequest{
		Name:       "Alice",
		Email:      "alice@company.com",
		Role:       domain.RoleStaff,
		PositionID: &pos.ID,
	})

	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/positions/%d", pos.ID), token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("delete position in use: status = %d, want 409", resp.StatusCode)
	}
}

func TestEmployees_DeleteGuardWorkflow(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	alice := e.createEmployee(t, token, dto.CreateEmployeeRequest{
		Name:  "Alice",
		Email: "alice@company.com",
		Role:  domain.RoleTeamLead,
	})
	bob := e.createEmployee(t, token, dto.CreateEmployeeRequest{
		Name:      "Bob",
		Email:     "bob@company.com",
		Role:      domain.RoleIntern,
		ManagerID: &alice.ID,
	})

	// У Алисы есть подчинённый
	resp := e.request(t, http.MethodGet, fmt.Sprintf("/api/subordinates/%d", alice.ID), token, nil)
	var subs []dto.SubordinateResponse
	decodeInto(t, resp, &subs)
	if len(subs) != 1 || subs[0].Name != "Bob" {
		t.Fatalf("subordinates of Alice = %+v, want [Bob]", subs)
	}

	// Удаление блокируется
	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/employees/%d", alice.ID), token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("delete manager with subordinates: status = %d, want 409", resp.StatusCode)
	}

	// Переводим Боба и повторяем
	resp = e.request(t, http.MethodPatch, fmt.Sprintf("/employees/%d", bob.ID), token, dto.UpdateEmployeeRequest{Role: domain.RoleIntern})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reassign Bob: status = %d, want 200", resp.StatusCode)
	}

	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/employees/%d", alice.ID), token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete after reassignment: status = %d, want 204", resp.StatusCode)
	}

	// Пустой список подчинённых не ошибка
	resp = e.request(t, http.MethodGet, fmt.Sprintf("/api/subordinates/%d", bob.ID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("subordinates of Bob: status = %d, want 200", resp.StatusCode)
	}
	var empty []dto.SubordinateResponse
	decodeInto(t, resp, &empty)
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty json array, got %#v", empty)
	}
}

func TestEmployees_RoleEditSyncsAccount(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	resp := e.request(t, http.MethodPost, "/auth/register", "", dto.RegisterRequest{
		Username: "dave",
		Password: "secret123",
		Email:    "dave@company.com",
		Name:     "Dave",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status = %d", resp.StatusCode)
	}

	// Ищем карточку Дэйва в общем списке
	resp = e.request(t, http.MethodGet, "/employees/", token, nil)
	var employees []dto.EmployeeResponse
	decodeInto(t, resp, &employees)

	var daveID int64
	for _, emp := range employees {
		if emp.Email == "dave@company.com" {
			daveID = emp.ID
		}
	}
	if daveID == 0 {
		t.Fatal("employee record for dave not found")
	}

	resp = e.request(t, http.MethodPatch, fmt.Sprintf("/employees/%d", daveID), token, dto.UpdateEmployeeRequest{Role: domain.RoleTeamLead})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update role: status = %d, want 200", resp.StatusCode)
	}

	// После смены роли токен выдаётся уже с новой ролью
	resp = e.request(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Username: "dave", Password: "secret123"})
	var login dto.LoginResponse
	decodeInto(t, resp, &login)
	if login.Role != domain.RoleTeamLead {
		t.Errorf("account role after sync = %q, want %q", login.Role, domain.RoleTeamLead)
	}
}

func TestEmployees_ManagerValidation(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	alice := e.createEmployee(t, token, dto.CreateEmployeeRequest{
		Name:  "Alice",
		Email: "alice@company.com",
		Role:  domain.RoleLeader,
	})
	bob := e.createEmployee(t, token, dto.CreateEmployeeRequest{
		Name:      "Bob",
		Email:     "bob@company.com",
		Role:      domain.RoleSupervisor,
		ManagerID: &alice.ID,
	})

	// Сам себе руководитель
	resp := e.request(t, http.MethodPatch, fmt.Sprintf("/employees/%d", alice.ID), token, dto.UpdateEmployeeRequest{
		Role:      domain.RoleLeader,
		ManagerID: &alice.ID,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("self management: status = %d, want 400", resp.StatusCode)
	}

	// Цикл в цепочке руководителей
	resp = e.request(t, http.MethodPatch, fmt.Sprintf("/employees/%d", alice.ID), token, dto.UpdateEmployeeRequest{
		Role:      domain.RoleLeader,
		ManagerID: &bob.ID,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("manager cycle: status = %d, want 409", resp.StatusCode)
	}

	// Несуществующий руководитель
	missing := int64(999)
	resp = e.request(t, http.MethodPatch, fmt.Sprintf("/employees/%d", bob.ID), token, dto.UpdateEmployeeRequest{
		Role:      domain.RoleSupervisor,
		ManagerID: &missing,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown manager: status = %d, want 404", resp.StatusCode)
	}
}

func TestEmployees_ManagerCandidates(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Zoe", Email: "zoe@company.com", Role: domain.RoleLeader})
	e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Adam", Email: "adam@company.com", Role: domain.RoleSupervisor})
	e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Ben", Email: "ben@company.com", Role: domain.RoleIntern})

	resp := e.request(t, http.MethodGet, "/employees/managers", token, nil)
	var candidates []dto.EmployeeResponse
	decodeInto(t, resp, &candidates)

	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Name != "Adam" || candidates[1].Name != "Zoe" {
		t.Errorf("candidates order = %s, %s; want Adam, Zoe", candidates[0].Name, candidates[1].Name)
	}
}

func TestNotices_OwnerOrAdminDelete(t *testing.T) {
	e := setupServer(t)

	e.seedAccount(t, "alice", "pass123", "alice@company.com", domain.RoleLeader)
	e.seedAccount(t, "bob", "pass123", "bob@company.com", domain.RoleLeader)
	aliceToken := e.login(t, "alice", "pass123")
	bobToken := e.login(t, "bob", "pass123")
	adminToken := e.adminToken(t)

	resp := e.request(t, http.MethodPost, "/notices/", aliceToken, dto.CreateNoticeRequest{Title: "First", Content: "x"})
	var first dto.NoticeResponse
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create notice: status = %d, want 201", resp.StatusCode)
	}
	decodeInto(t, resp, &first)
	if first.Priority != "normal" {
		t.Errorf("default priority = %q, want normal", first.Priority)
	}

	resp = e.request(t, http.MethodPost, "/notices/", aliceToken, dto.CreateNoticeRequest{Title: "Second", Content: "x"})
	var second dto.NoticeResponse
	decodeInto(t, resp, &second)

	// Чужое объявление не удалить
	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/notices/%d", first.ID), bobToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("delete foreign notice: status = %d, want 403", resp.StatusCode)
	}

	// Автор и администратор могут
	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/notices/%d", first.ID), aliceToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("author delete: status = %d, want 204", resp.StatusCode)
	}

	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/notices/%d", second.ID), adminToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("admin delete: status = %d, want 204", resp.StatusCode)
	}
}

func TestNotices_DemotedAuthorStillDeletesOwn(t *testing.T) {
	e := setupServer(t)

	// Автор публиковал с рангом leader, но был понижен до staff
	author := e.seedAccount(t, "alice", "pass123", "alice@company.com", domain.RoleStaff)
	_ = e.seedAccount(t, "bob", "pass123", "bob@company.com", domain.RoleStaff)

	notice := &domain.Notice{Title: "Old announcement", Content: "x", AuthorID: author.ID, Priority: "normal", IsActive: true}
	if err := e.repos.Notices.Create(context.Background(), notice); err != nil {
		t.Fatalf("failed to create notice: %v", err)
	}

	aliceToken := e.login(t, "alice", "pass123")
	bobToken := e.login(t, "bob", "pass123")

	// Раздел объявлений по-прежнему закрыт для рангов ниже leader
	resp := e.request(t, http.MethodGet, "/notices/", aliceToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("GET /notices/ below leader rank: status = %d, want 403", resp.StatusCode)
	}

	// Но чужое объявление не удалить даже так
	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/notices/%d", notice.ID), bobToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("delete foreign notice: status = %d, want 403", resp.StatusCode)
	}

	// Своё объявление автор удаляет независимо от текущего ранга
	resp = e.request(t, http.MethodDelete, fmt.Sprintf("/notices/%d", notice.ID), aliceToken, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("author delete after demotion: status = %d, want 204", resp.StatusCode)
	}
}

func TestDashboard_Overview(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	resp := e.request(t, http.MethodGet, "/dashboard", "", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("dashboard without token: status = %d, want 401", resp.StatusCode)
	}

	resp = e.request(t, http.MethodPost, "/departments/", token, dto.CreateDepartmentRequest{Name: "Engineering"})
	resp.Body.Close()
	resp = e.request(t, http.MethodPost, "/positions/", token, dto.CreatePositionRequest{Title: "Engineer"})
	resp.Body.Close()

	earlier := "2026-08-01"
	later := "2026-08-20"
	alice := e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Alice", Email: "alice@company.com", Role: domain.RoleStaff, JoinDate: &earlier})
	e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Bob", Email: "bob@company.com", Role: domain.RoleIntern, JoinDate: &later})

	// Посещаемость: одна отметка сегодня, одна вчерашняя в счётчик не попадает
	ctx := context.Background()
	if err := e.repos.Attendance.Create(ctx, &domain.Attendance{EmployeeID: alice.ID, Type: "check-in", Timestamp: time.Now()}); err != nil {
		t.Fatalf("failed to create attendance: %v", err)
	}
	if err := e.repos.Attendance.Create(ctx, &domain.Attendance{EmployeeID: alice.ID, Type: "check-in", Timestamp: time.Now().AddDate(0, 0, -1)}); err != nil {
		t.Fatalf("failed to create attendance: %v", err)
	}

	// Объявления: в счётчик входят только активные
	admin, err := e.repos.Accounts.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("failed to load admin account: %v", err)
	}
	if err := e.repos.Notices.Create(ctx, &domain.Notice{Title: "Active", Content: "x", AuthorID: admin.ID, Priority: "normal", IsActive: true}); err != nil {
		t.Fatalf("failed to create notice: %v", err)
	}
	if err := e.repos.Notices.Create(ctx, &domain.Notice{Title: "Archived", Content: "x", AuthorID: admin.ID, Priority: "normal", IsActive: false}); err != nil {
		t.Fatalf("failed to create notice: %v", err)
	}

	resp = e.request(t, http.MethodGet, "/dashboard", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: status = %d, want 200", resp.StatusCode)
	}

	var overview dto.DashboardResponse
	decodeInto(t, resp, &overview)

	if overview.EmployeeCount != 2 {
		t.Errorf("employee_count = %d, want 2", overview.EmployeeCount)
	}
	if overview.DepartmentCount != 1 {
		t.Errorf("department_count = %d, want 1", overview.DepartmentCount)
	}
	if overview.PositionCount != 1 {
		t.Errorf("position_count = %d, want 1", overview.PositionCount)
	}
	if overview.AttendanceToday != 1 {
		t.Errorf("attendance_today = %d, want 1", overview.AttendanceToday)
	}
	if overview.ActiveNotices != 1 {
		t.Errorf("active_notices = %d, want 1", overview.ActiveNotices)
	}
	if len(overview.RecentHires) != 2 {
		t.Fatalf("recent_hires length = %d, want 2", len(overview.RecentHires))
	}
	if overview.RecentHires[0].Name != "Bob" {
		t.Errorf("most recent hire = %s, want Bob", overview.RecentHires[0].Name)
	}
}

func TestSalaries_TotalComputed(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	alice := e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Alice", Email: "alice@company.com", Role: domain.RoleStaff})

	resp := e.request(t, http.MethodPost, "/salaries/", token, dto.CreateSalaryRequest{
		EmployeeID: alice.ID,
		BaseSalary: "5000.00",
		Bonus:      "500.50",
		Deduction:  "100.25",
		PayDate:    "2026-08-01",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create salary: status = %d, want 201", resp.StatusCode)
	}

	var sal dto.SalaryResponse
	decodeInto(t, resp, &sal)
	if sal.Total.String() != "5400.25" {
		t.Errorf("total = %s, want 5400.25", sal.Total)
	}

	// Нечисловая сумма отклоняется
	resp = e.request(t, http.MethodPost, "/salaries/", token, dto.CreateSalaryRequest{
		EmployeeID: alice.ID,
		BaseSalary: "five thousand",
		PayDate:    "2026-08-01",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid amount: status = %d, want 400", resp.StatusCode)
	}
}

func TestAttendance_Create(t *testing.T) {
	e := setupServer(t)
	token := e.adminToken(t)

	alice := e.createEmployee(t, token, dto.CreateEmployeeRequest{Name: "Alice", Email: "alice@company.com", Role: domain.RoleStaff})

	resp := e.request(t, http.MethodPost, "/attendance/", token, dto.CreateAttendanceRequest{
		EmployeeID: alice.ID,
		Type:       "check-in",
		Timestamp:  "2026-08-28T09:00",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("create attendance: status = %d, want 201", resp.StatusCode)
	}

	// Для несуществующего сотрудника запись не создаётся
	resp = e.request(t, http.MethodPost, "/attendance/", token, dto.CreateAttendanceRequest{
		EmployeeID: 999,
		Type:       "check-in",
		Timestamp:  "2026-08-28T09:00",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown employee: status = %d, want 404", resp.StatusCode)
	}
}
