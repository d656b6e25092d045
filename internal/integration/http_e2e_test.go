//go:build integration || !unit

package integration

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	server "hostbot/internal/adapters/http_server"
	redisad "hostbot/internal/adapters/redis"
	"hostbot/internal/app"
	mysqlrepo "hostbot/internal/storage/mysql"
)

// ---------- helpers ----------
func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func postJSON(t *testing.T, url, body string, dst any) int {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer res.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return res.StatusCode
}

// ---------- the test ----------
func TestHTTP_EndToEnd_MessagesQuotesActions(t *testing.T) {
	// Start isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("dockertest unavailable: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=hostbot",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Skipf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "hostbot")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)

	mr := miniredis.RunT(t)
	cache := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "e2e:")

	repo := mysqlrepo.New(db)
	srv := server.New(zerolog.Nop())
	srv.MountHandlers(&server.Handlers{
		Auto: app.NewAutomationService(repo),
		Q:    app.NewQueryService(repo, cache, time.Minute),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// a guest message is answered and logged
	var reply struct {
		Intent string `json:"intent"`
		Urgent bool   `json:"urgent"`
	}
	if st := postJSON(t, ts.URL+"/v1/messages",
		`{"guest_name":"Mike R.","text":"Heating is broken","urgency":"urgent"}`, &reply); st != http.StatusOK {
		t.Fatalf("messages status %d", st)
	}
	if reply.Intent != "problem" || !reply.Urgent {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	// a quote lands in redis
	var quote struct {
		Price int `json:"price"`
	}
	body := `{"base_price":100,"season":"low","days_until_arrival":10,"nights_stayed":7}`
	if st := postJSON(t, ts.URL+"/v1/prices", body, &quote); st != http.StatusOK || quote.Price != 72 {
		t.Fatalf("unexpected quote: status=%d %+v", st, quote)
	}
	if keys := mr.Keys(); len(keys) != 1 || !strings.HasPrefix(keys[0], "e2e:quote:") {
		t.Fatalf("expected one cached quote, got %v", keys)
	}

	// a confirmation is rendered and logged
	if st := postJSON(t, ts.URL+"/v1/templates/confirmation",
		`{"guest_name":"John","property_name":"Villa Sunset","check_in":"Mar 15","check_out":"Mar 18","total":850}`, nil); st != http.StatusOK {
		t.Fatalf("template status %d", st)
	}

	res, err := http.Get(ts.URL + "/v1/actions?limit=5")
	if err != nil {
		t.Fatalf("GET actions: %v", err)
	}
	defer res.Body.Close()
	var actions struct {
		Items []struct {
			Kind      string  `json:"kind"`
			GuestName string  `json:"guest_name"`
			Subject   *string `json:"subject"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&actions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(actions.Items) != 2 {
		t.Fatalf("expected 2 actions, got %+v", actions.Items)
	}
	kinds := map[string]bool{}
	for _, a := range actions.Items {
		kinds[a.Kind] = true
	}
	if !kinds["auto_reply"] || !kinds["confirmation"] {
		t.Fatalf("unexpected action kinds: %+v", actions.Items)
	}
}
