package handlers

import (
	"context"

	"catalog_service/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	result  service.AuthResult
	authErr error
	checkOK bool
	chkErr  error

	lastUsername  string
	lastPassword  string
	lastSessionID string
}

func (m *mockAuth) Authenticate(_ context.Context, username, password string) (service.AuthResult, error) {
	m.lastUsername = username
	m.lastPassword = password
	return m.result, m.authErr
}

func (m *mockAuth) CheckSession(_ context.Context, sessionID string) (bool, error) {
	m.lastSessionID = sessionID
	return m.checkOK, m.chkErr
}

type mockAdmin struct {
	userID    int64
	userErr   error
	itemID    int64
	itemErr   error
	userCalls int
	itemCalls int

	lastUsername string
	lastPassword string
	lastItem     service.NewItem
}

func (m *mockAdmin) CreateUser(_ context.Context, username, password string) (int64, error) {
	m.userCalls++
	m.lastUsername = username
	m.lastPassword = password
	return m.userID, m.userErr
}

func (m *mockAdmin) AddItem(_ context.Context, item service.NewItem) (int64, error) {
	m.itemCalls++
	m.lastItem = item
	return m.itemID, m.itemErr
}

type mockCatalog struct {
	page      service.CatalogPage
	err       error
	calls     int
	lastQuery service.CatalogQuery
}

func (m *mockCatalog) List(_ context.Context, q service.CatalogQuery) (service.CatalogPage, error) {
	m.calls++
	m.lastQuery = q
	return m.page, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newMockService() (*service.Service, *mockAuth, *mockAdmin, *mockCatalog) {
	auth := &mockAuth{}
	admin := &mockAdmin{}
	catalog := &mockCatalog{}
	return &service.Service{Authorization: auth, Admin: admin, Catalog: catalog}, auth, admin, catalog
}
