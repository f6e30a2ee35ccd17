package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	domainClient "github.com/kinesia-app/kinesia/domains/client"
	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
)

// fakeClientService implements IClientUsecase for handler tests.
type fakeClientService struct {
	created   *domainClient.CreateClientRequest
	lastOwner string
}

func (f *fakeClientService) Create(ctx context.Context, ownerID string, req domainClient.CreateClientRequest) (domainClient.Client, error) {
	f.created = &req
	f.lastOwner = ownerID
	return domainClient.Client{ID: "c1", OwnerID: ownerID, DisplayName: req.DisplayName, Enabled: true}, nil
}

func (f *fakeClientService) List(ctx context.Context, ownerID string) ([]domainClient.Client, error) {
	f.lastOwner = ownerID
	return []domainClient.Client{{ID: "c1", DisplayName: "Ana"}}, nil
}

func (f *fakeClientService) GetByID(ctx context.Context, ownerID, id string) (domainClient.Client, error) {
	if id == "missing" {
		return domainClient.Client{}, domainClient.ErrClientNotFound
	}
	return domainClient.Client{ID: id}, nil
}

func (f *fakeClientService) Update(ctx context.Context, ownerID, id string, req domainClient.UpdateClientRequest) (domainClient.Client, error) {
	return domainClient.Client{ID: id}, nil
}

func (f *fakeClientService) Delete(ctx context.Context, ownerID, id string) error {
	return nil
}

func newClientTestApp(service domainClient.IClientUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Recovery())
	// Stand-in for the auth middleware: attach a fixed session.
	app.Use(func(c *fiber.Ctx) error {
		session := &notionbridge.Session{OwnerID: "prac-1", PractitionerName: "Ana"}
		c.SetUserContext(notionbridge.WithSession(c.UserContext(), session))
		return c.Next()
	})
	InitRestClient(app, service)
	return app
}

func TestClientCreate(t *testing.T) {
	service := &fakeClientService{}
	app := newClientTestApp(service)

	body, _ := json.Marshal(domainClient.CreateClientRequest{DisplayName: "Ana", Email: "ana@example.com"})
	req := httptest.NewRequest("POST", "/clients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.created == nil || service.created.DisplayName != "Ana" {
		t.Fatalf("request body not forwarded: %+v", service.created)
	}
	if service.lastOwner != "prac-1" {
		t.Fatalf("owner must come from the session, got %q", service.lastOwner)
	}
}

func TestClientGetNotFound(t *testing.T) {
	app := newClientTestApp(&fakeClientService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/clients/missing", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestClientList(t *testing.T) {
	app := newClientTestApp(&fakeClientService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/clients", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Code    string                `json:"code"`
		Results []domainClient.Client `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Code != "SUCCESS" || len(envelope.Results) != 1 {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}
