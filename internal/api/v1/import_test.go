package v1

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func uploadFile(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestImport_CSVUpload(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter()

	body, contentType := uploadFile(t, "statement.csv", []byte("項目,金額\n營業收入,\"3,000\"\n營業成本,1800\n"))

	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("import status=%d body=%s", w.Code, w.Body.String())
	}

	var parsed StatementResponse
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if parsed.Sums["revenue"] != 3000 || parsed.Sums["cogs"] != 1800 {
		t.Fatalf("unexpected sums: %v", parsed.Sums)
	}
	if parsed.Source != "statement.csv" {
		t.Fatalf("source want=statement.csv got=%s", parsed.Source)
	}
}

func TestImport_UnreadableFileKeepsSession(t *testing.T) {
	t.Parallel()

	r, sess := newTestRouter()

	// 先正常解析一次
	doJSON(t, r, http.MethodPost, "/api/table", map[string]any{
		"headers": []string{"營業收入"},
		"rows":    [][]any{{100}},
	})

	// 再上传一个坏文件：本次解析失败，但不覆盖已有数据
	body, contentType := uploadFile(t, "broken.xlsx", []byte("not a workbook"))
	req := httptest.NewRequest(http.MethodPost, "/api/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("broken upload status=%d", w.Code)
	}

	totals, source := sess.Totals()
	if totals == nil || totals.Sums["revenue"] != 100 {
		t.Fatalf("prior totals must survive a failed parse: %v", totals)
	}
	if source != "manual" {
		t.Fatalf("source want=manual got=%s", source)
	}
}
