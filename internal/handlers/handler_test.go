// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// in-memory repositories and request helpers.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"triviaapi/internal/models"
	"triviaapi/internal/respond"
	"triviaapi/internal/store"
)

var errStorage = errors.New("storage unavailable")

// fakeQuestions is an in-memory QuestionRepository. Setting err makes every
// method fail.
type fakeQuestions struct {
	mu     sync.Mutex
	items  []models.Question
	nextID int
	err    error
}

func (f *fakeQuestions) List(_ context.Context) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.items), nil
}

func (f *fakeQuestions) ListByCategory(_ context.Context, categoryID int) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Question
	for _, q := range f.items {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) Search(_ context.Context, term string) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Question
	for _, q := range f.items {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return len(f.items), nil
}

func (f *fakeQuestions) FindByID(_ context.Context, id int) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, q := range f.items {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeQuestions) Create(_ context.Context, q *models.Question) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	created := *q
	created.ID = f.nextID
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeQuestions) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, q := range f.items {
		if q.ID == id {
			f.items = slices.Delete(f.items, i, i+1)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakeCategories is an in-memory CategoryRepository.
type fakeCategories struct {
	items []models.Category
	err   error
}

func (f *fakeCategories) List(_ context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.items), nil
}

// testEnv holds an API wired to in-memory repositories.
type testEnv struct {
	Questions  *fakeQuestions
	Categories *fakeCategories
	API        *API
}

// newTestEnv creates an API with the six standard categories and the given
// questions. Questions without an ID are numbered in order.
func newTestEnv(t *testing.T, questions ...models.Question) *testEnv {
	t.Helper()

	qs := &fakeQuestions{}
	for _, q := range questions {
		if q.ID == 0 {
			q.ID = qs.nextID + 1
		}
		qs.nextID = max(qs.nextID, q.ID)
		qs.items = append(qs.items, q)
	}

	cats := &fakeCategories{items: []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}}

	return &testEnv{Questions: qs, Categories: cats, API: NewAPI(qs, cats)}
}

// makeQuestions builds n questions in the given category.
func makeQuestions(n, category int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			Question:   fmt.Sprintf("Question %d?", i+1),
			Answer:     fmt.Sprintf("Answer %d", i+1),
			Category:   category,
			Difficulty: 1 + i%5,
		}
	}
	return qs
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeBody decodes a JSON response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

// assertEnvelope checks that rec holds the error envelope for status.
func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	_, msg := respond.Message(status)
	if env.Success || env.Error != status || env.Message != msg {
		t.Errorf("envelope: got %+v, want {false %d %q}", env, status, msg)
	}
}

// questionIDs extracts the ids of the "questions" array of a response body.
func questionIDs(t *testing.T, body map[string]any) []int {
	t.Helper()
	raw, ok := body["questions"].([]any)
	if !ok {
		t.Fatalf("questions is %T, want array", body["questions"])
	}
	ids := make([]int, len(raw))
	for i, q := range raw {
		ids[i] = int(q.(map[string]any)["id"].(float64))
	}
	return ids
}
