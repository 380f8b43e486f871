package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-store/internal/router"
)

type petResp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta sin "available": default true + Location header
	st, body, headers := doReq(t, ts.URL, "POST", "/pets", map[string]any{
		"name":     "sammy",
		"category": "snake",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var created petResp
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	if !created.Available {
		t.Fatalf("expected available=true by default, got body=%s", string(body))
	}

	wantLoc := fmt.Sprintf("/pets/%d", created.ID)
	if loc := headers.Get("Location"); loc != wantLoc {
		t.Fatalf("expected Location %q, got %q", wantLoc, loc)
	}

	petPath := wantLoc

	// 2) Lo recuperamos por el ID devuelto: mismos campos
	{
		st, body, _ := doReq(t, ts.URL, "GET", petPath, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var got petResp
		_ = json.Unmarshal(body, &got)
		if got != created {
			t.Fatalf("get after create mismatch: got %+v want %+v", got, created)
		}
	}

	// 3) PUT reemplaza los campos mutables
	{
		st, body, _ := doReq(t, ts.URL, "PUT", petPath, map[string]any{
			"name":      "sammy",
			"category":  "python",
			"available": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
		}
		var got petResp
		_ = json.Unmarshal(body, &got)
		if got.Category != "python" {
			t.Fatalf("expected category python after update, got %+v", got)
		}
		if got.ID != created.ID {
			t.Fatalf("update must not change id: got %d want %d", got.ID, created.ID)
		}
	}

	// 4) Compra: pasa a no disponible
	{
		st, body, _ := doReq(t, ts.URL, "POST", petPath+"/purchase", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 purchase, got %d body=%s", st, string(body))
		}
		var got petResp
		_ = json.Unmarshal(body, &got)
		if got.Available {
			t.Fatalf("expected available=false after purchase, got %+v", got)
		}
	}

	// 5) Segunda compra: conflicto
	{
		st, body, _ := doReq(t, ts.URL, "POST", petPath+"/purchase", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second purchase, got %d body=%s", st, string(body))
		}
	}

	// 6) Delete dos veces: idempotente, 204 ambas
	for i := 0; i < 2; i++ {
		st, body, _ := doReq(t, ts.URL, "DELETE", petPath, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete (call %d), got %d body=%s", i+1, st, string(body))
		}
		if len(body) != 0 {
			t.Fatalf("expected empty body on delete, got %s", string(body))
		}
	}

	// 7) Ya no existe
	{
		st, _, _ := doReq(t, ts.URL, "GET", petPath, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_CreatePet_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Payload vacío => 400
	{
		st, _, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty payload, got %d", st)
		}
	}

	// Body vacío de verdad (sin bytes) => 400
	{
		st, _ := doReqRaw(t, ts.URL, "POST", "/pets", "application/json", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for no body, got %d", st)
		}
	}

	// Content type incorrecto => 415
	{
		st, _ := doReqRaw(t, ts.URL, "POST", "/pets", "text/plain", []byte(`{"name":"fido","category":"dog"}`))
		if st != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415 for wrong content type, got %d", st)
		}
	}

	// Sin content type => 415
	{
		st, _ := doReqRaw(t, ts.URL, "POST", "/pets", "", []byte(`{"name":"fido","category":"dog"}`))
		if st != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415 for missing content type, got %d", st)
		}
	}

	// Falta name => 400
	{
		st, _, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{"category": "dog"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing name, got %d", st)
		}
	}
}

func TestHTTP_UpdatePet_NotFound(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body, _ := doReq(t, ts.URL, "PUT", "/pets/424242", map[string]any{
		"name":     "timothy",
		"category": "mouse",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 updating unknown pet, got %d body=%s", st, string(body))
	}

	// ID no numérico también es not found
	st, _, _ = doReq(t, ts.URL, "PUT", "/pets/abc", map[string]any{
		"name":     "timothy",
		"category": "mouse",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id, got %d", st)
	}
}

func TestHTTP_ListPets_Filters(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	fido := createPet(t, ts.URL, map[string]any{"name": "fido", "category": "dog"})
	_ = createPet(t, ts.URL, map[string]any{"name": "kitty", "category": "cat"})

	// Filtro por categoría: solo matches
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/pets?category=dog", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list by category, got %d", st)
		}
		var items []petResp
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Category != "dog" {
			t.Fatalf("expected only dogs, got %s", string(body))
		}
		if !strings.Contains(string(body), "fido") || strings.Contains(string(body), "kitty") {
			t.Fatalf("category filter leaked records: %s", string(body))
		}
	}

	// Filtro por nombre
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/pets?name=kitty", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list by name, got %d", st)
		}
		var items []petResp
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].Name != "kitty" {
			t.Fatalf("expected only kitty, got %s", string(body))
		}
	}

	// Filtro por disponibilidad después de comprar a fido
	{
		st, _, _ := doReq(t, ts.URL, "POST", fmt.Sprintf("/pets/%d/purchase", fido.ID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 purchase fido, got %d", st)
		}

		st, body, _ := doReq(t, ts.URL, "GET", "/pets?available=false", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list by availability, got %d", st)
		}
		var items []petResp
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].ID != fido.ID || items[0].Available {
			t.Fatalf("expected only purchased fido, got %s", string(body))
		}
	}

	// Sin filtros: lista completa
	{
		st, body, _ := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []petResp
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 pets, got %s", string(body))
		}
	}
}

func createPet(t *testing.T, baseURL string, payload map[string]any) petResp {
	t.Helper()

	st, body, _ := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp petResp
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte, http.Header) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody, res.Header
}

// doReqRaw manda el body tal cual, con el content type indicado (o ninguno).
func doReqRaw(t *testing.T, baseURL, method, path, contentType string, raw []byte) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if raw != nil {
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
