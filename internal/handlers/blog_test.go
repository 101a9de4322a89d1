package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"blog_api/internal/models"
	"blog_api/internal/service"
)

func newBlogTestRouter(blog *mockBlog) (http.Handler, *mockAuth) {
	auth := &mockAuth{principal: models.Principal{ID: 7, Username: "alice"}}
	return newTestRouter(&service.Service{Authorization: auth, Blog: blog}), auth
}

func TestBlogHandlers_RequireAuth(t *testing.T) {
	blog := &mockBlog{}
	r, _ := newBlogTestRouter(blog)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/blogs/", ""},
		{http.MethodGet, "/blogs/blog/1", ""},
		{http.MethodPost, "/blogs/blog", `{"title":"Hello","content":"World"}`},
		{http.MethodPut, "/blogs/blog/1", `{"title":"Hello","content":"World"}`},
		{http.MethodDelete, "/blogs/blog/1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body io.Reader
			if tc.body != "" {
				body = bytes.NewBufferString(tc.body)
			}
			w := do(t, r, tc.method, tc.path, body, nil)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d (body=%s)", w.Code, w.Body.String())
			}
		})
	}
	if blog.calls != 0 {
		t.Fatalf("service must not be reached without auth, got %d calls", blog.calls)
	}
}

func TestBlogHandlers_List(t *testing.T) {
	blog := &mockBlog{listResp: []models.Post{{ID: 1, Title: "Hello World", Content: "My first post", OwnerID: 7}}}
	r, _ := newBlogTestRouter(blog)

	w := do(t, r, http.MethodGet, "/blogs/", nil, authHeader("valid"))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var posts []models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Hello World" || posts[0].OwnerID != 7 {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if blog.lastCaller.ID != 7 {
		t.Fatalf("expected caller 7 to be passed through, got %d", blog.lastCaller.ID)
	}

	blog.listErr = errors.New("db down")
	w = do(t, r, http.MethodGet, "/blogs/", nil, authHeader("valid"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestBlogHandlers_Get(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		getErr error
		want   int
	}{
		{name: "found", path: "/blogs/blog/3", want: http.StatusOK},
		{name: "missing", path: "/blogs/blog/3", getErr: service.ErrPostNotFound, want: http.StatusNotFound},
		{name: "zero id", path: "/blogs/blog/0", want: http.StatusUnprocessableEntity},
		{name: "negative id", path: "/blogs/blog/-4", want: http.StatusUnprocessableEntity},
		{name: "non-numeric id", path: "/blogs/blog/abc", want: http.StatusUnprocessableEntity},
		{name: "store failure", path: "/blogs/blog/3", getErr: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blog := &mockBlog{getResp: models.Post{ID: 3, Title: "T", Content: "C", OwnerID: 99}, getErr: tc.getErr}
			r, _ := newBlogTestRouter(blog)

			w := do(t, r, http.MethodGet, tc.path, nil, authHeader("valid"))
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusOK {
				var p models.Post
				_ = json.Unmarshal(w.Body.Bytes(), &p)
				if p.ID != 3 || p.OwnerID != 99 {
					t.Fatalf("unexpected post: %+v", p)
				}
				if blog.lastID != 3 {
					t.Fatalf("expected id 3, got %d", blog.lastID)
				}
			}
			if tc.want == http.StatusNotFound {
				var out map[string]string
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out["error"] != errBlogNotFound {
					t.Fatalf("unexpected error body: %v", out)
				}
			}
		})
	}
}

func TestBlogHandlers_Create(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{name: "valid", body: `{"title":"Hello World","content":"My first post"}`, want: http.StatusCreated},
		{name: "short title", body: `{"title":"Hi","content":"My first post"}`, want: http.StatusUnprocessableEntity},
		{name: "short content", body: `{"title":"Hello","content":"ok"}`, want: http.StatusUnprocessableEntity},
		{name: "missing content", body: `{"title":"Hello"}`, want: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `{"title":`, want: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blog := &mockBlog{}
			r, _ := newBlogTestRouter(blog)

			w := do(t, r, http.MethodPost, "/blogs/blog", bytes.NewBufferString(tc.body), authHeader("valid"))
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusCreated {
				if w.Body.Len() != 0 {
					t.Fatalf("expected empty body, got %q", w.Body.String())
				}
				if blog.lastCaller.ID != 7 || blog.lastParams.Title != "Hello World" || blog.lastParams.Content != "My first post" {
					t.Fatalf("unexpected create call: caller=%+v params=%+v", blog.lastCaller, blog.lastParams)
				}
			} else if blog.calls != 0 {
				t.Fatalf("service must not be called on invalid input")
			}
		})
	}
}

func TestBlogHandlers_CreateReportsFieldErrors(t *testing.T) {
	r, _ := newBlogTestRouter(&mockBlog{})

	w := do(t, r, http.MethodPost, "/blogs/blog", bytes.NewBufferString(`{"title":"Hi","content":"My first post"}`), authHeader("valid"))
	var out struct {
		Error  string       `json:"error"`
		Fields []fieldError `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Error != errValidation || len(out.Fields) != 1 {
		t.Fatalf("unexpected body: %+v", out)
	}
	if f := out.Fields[0]; f.Field != "title" || f.Rule != "min" || f.Param != "3" {
		t.Fatalf("unexpected field error: %+v", f)
	}
}

func TestBlogHandlers_Update(t *testing.T) {
	cases := []struct {
		name      string
		path      string
		body      string
		updateErr error
		want      int
	}{
		{name: "ok", path: "/blogs/blog/5", body: `{"title":"New title","content":"New content"}`, want: http.StatusNoContent},
		{name: "not owner or missing", path: "/blogs/blog/5", body: `{"title":"New title","content":"New content"}`, updateErr: service.ErrPostNotFound, want: http.StatusNotFound},
		{name: "invalid body", path: "/blogs/blog/5", body: `{"title":"X","content":"New content"}`, want: http.StatusUnprocessableEntity},
		{name: "invalid id", path: "/blogs/blog/0", body: `{"title":"New title","content":"New content"}`, want: http.StatusUnprocessableEntity},
		{name: "store failure", path: "/blogs/blog/5", body: `{"title":"New title","content":"New content"}`, updateErr: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blog := &mockBlog{updateErr: tc.updateErr}
			r, _ := newBlogTestRouter(blog)

			w := do(t, r, http.MethodPut, tc.path, bytes.NewBufferString(tc.body), authHeader("valid"))
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusNoContent && (blog.lastID != 5 || blog.lastCaller.ID != 7 || blog.lastParams.Title != "New title") {
				t.Fatalf("unexpected update call: id=%d caller=%+v params=%+v", blog.lastID, blog.lastCaller, blog.lastParams)
			}
		})
	}
}

func TestBlogHandlers_Delete(t *testing.T) {
	cases := []struct {
		name      string
		path      string
		deleteErr error
		want      int
	}{
		{name: "ok", path: "/blogs/blog/9", want: http.StatusNoContent},
		{name: "not owner or missing", path: "/blogs/blog/9", deleteErr: service.ErrPostNotFound, want: http.StatusNotFound},
		{name: "invalid id", path: "/blogs/blog/nine", want: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blog := &mockBlog{deleteErr: tc.deleteErr}
			r, _ := newBlogTestRouter(blog)

			w := do(t, r, http.MethodDelete, tc.path, nil, authHeader("valid"))
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.want, w.Body.String())
			}
			if tc.want == http.StatusNoContent && blog.lastID != 9 {
				t.Fatalf("expected id 9, got %d", blog.lastID)
			}
		})
	}
}
