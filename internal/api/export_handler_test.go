package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestExportSignatureReturnsHTML(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performMultipart(t, router, http.MethodPost, "/api/export/signature",
		map[string]string{
			"name":       "Maria Souza",
			"email":      "maria@contas.com.br",
			"sector":     "Financeiro",
			"userId":     "1234",
			"iconsColor": "#0455A2, #12A84E",
		}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Maria Souza") {
		t.Fatalf("rendered document missing the name")
	}
	if !strings.Contains(body, "maria@contas.com.br") {
		t.Fatalf("rendered document missing the email")
	}
	if !strings.Contains(body, `stop-color="#0455A2"`) {
		t.Fatalf("icon gradient stops missing from document")
	}
}

func TestExportSignatureEscapesFields(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performMultipart(t, router, http.MethodPost, "/api/export/signature",
		map[string]string{
			"name":  `<script>alert(1)</script>`,
			"email": `a&b@contas.com.br`,
		}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Fatalf("script tag survived unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("escaped name missing from document")
	}
	if !strings.Contains(body, "a&amp;b@contas.com.br") {
		t.Fatalf("escaped email missing from document")
	}
}

func TestExportSignatureEmbedsUploadedPhoto(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performMultipart(t, router, http.MethodPost, "/api/export/signature",
		map[string]string{"name": "Maria"},
		map[string]string{"image": "foto.png"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	if !strings.Contains(rec.Body.String(), "data:application/octet-stream;base64,") {
		t.Fatalf("uploaded photo was not embedded as a data URI")
	}
}

func TestExportSignatureWithoutPhotoUsesFallback(t *testing.T) {
	router := newTestRouter(t, &fakeUserStore{}, &fakeTemplateStore{}, &fakeStorage{})

	rec := performMultipart(t, router, http.MethodPost, "/api/export/signature",
		map[string]string{"name": "Maria"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "linear-gradient(120deg, #222, #444)") {
		t.Fatalf("photo fallback gradient missing from document")
	}
}
