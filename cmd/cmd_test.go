package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/datascribe/datascribe-go/auth"
	"github.com/datascribe/datascribe-go/internal/testutil"
	fake "github.com/datascribe/datascribe-go/internal/testutil/rest"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(args ...string) result {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

var _ = Describe("datascribe", func() {
	var server *fake.Server
	var savedToken, savedAdmin string

	BeforeEach(func() {
		server = fake.NewServer(testutil.TestAPIKey)
		savedToken = os.Getenv(auth.EnvAPIToken)
		savedAdmin = os.Getenv(auth.EnvAdminAPIToken)
		Expect(os.Setenv(auth.EnvAPIToken, testutil.TestAPIKey)).To(Succeed())
		Expect(os.Unsetenv(auth.EnvAdminAPIToken)).To(Succeed())
		Expect(os.Setenv("DATASCRIBE_BASE_URL", server.URL)).To(Succeed())
		Expect(os.Setenv("DATASCRIBE_MAX_RETRIES", "0")).To(Succeed())
	})

	AfterEach(func() {
		server.Close()
		_ = os.Setenv(auth.EnvAPIToken, savedToken)
		_ = os.Setenv(auth.EnvAdminAPIToken, savedAdmin)
		_ = os.Unsetenv("DATASCRIBE_BASE_URL")
		_ = os.Unsetenv("DATASCRIBE_MAX_RETRIES")
	})

	Describe("usage", func() {
		It("Should print help and exit 2 without a command", func() {
			r := run()
			Expect(r.code).To(Equal(ExitUsage))
			Expect(r.stdout).To(ContainSubstring("DataScribe CLI - Interact with the DataScribe API."))
			Expect(r.stdout).To(ContainSubstring("data-table-rows"))
			Expect(r.stdout).To(ContainSubstring("search-materials"))
		})

		It("Should exit 2 on unknown commands", func() {
			r := run("nonexistent-command")
			Expect(r.code).To(Equal(ExitUsage))
			Expect(r.stderr).To(HavePrefix("Error: unknown command"))
		})

		It("Should exit 2 when a required flag is missing", func() {
			r := run("data-table-columns")
			Expect(r.code).To(Equal(ExitUsage))
			Expect(r.stderr).To(ContainSubstring("table-name"))
			Expect(server.Requests()).To(BeEmpty())
		})

		It("Should exit 2 on malformed filters without calling the service", func() {
			r := run("data-table", "-t", "table1", "--filter", "age ~ 3")
			Expect(r.code).To(Equal(ExitUsage))
			Expect(r.stderr).To(ContainSubstring("Error: Invalid filter syntax: age ~ 3"))
			Expect(server.Requests()).To(BeEmpty())
		})
	})

	Describe("data-tables-for-user", func() {
		It("Should print a header followed by YAML", func() {
			r := run("data-tables-for-user")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(r.stdout).To(HavePrefix("DataTables (2)\n"))
			Expect(r.stdout).To(ContainSubstring("table_name: table1"))
			Expect(r.stdout).To(ContainSubstring("display_name: Table Two"))
		})

		It("Should print one JSON document per table", func() {
			r := run("data-tables-for-user", "--json")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
			Expect(lines).To(HaveLen(2))

			var table map[string]interface{}
			Expect(json.Unmarshal([]byte(lines[0]), &table)).To(Succeed())
			Expect(table["table_name"]).To(Equal("table1"))
		})

		It("Should report a missing API key as a runtime error", func() {
			Expect(os.Unsetenv(auth.EnvAPIToken)).To(Succeed())
			r := run("data-tables-for-user")
			Expect(r.code).To(Equal(ExitRuntime))
			Expect(r.stderr).To(HavePrefix("Error: API key is required"))
		})

		It("Should prefer the --api-key flag over the environment", func() {
			r := run("data-tables-for-user", "--api-key", "wrong-key")
			Expect(r.code).To(Equal(ExitRuntime))
			Expect(r.stderr).To(ContainSubstring("HTTP Error 401"))
		})
	})

	Describe("data-tables", func() {
		It("Should use the admin key when one is set", func() {
			Expect(os.Setenv(auth.EnvAdminAPIToken, "admin-key")).To(Succeed())
			server.Handle("/data/data-tables", func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer admin-key" {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				_, _ = w.Write([]byte(`{"success": true, "results": [{"table_name": "all1"}]}`))
			})

			r := run("data-tables", "--json")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(r.stdout).To(ContainSubstring(`"table_name":"all1"`))
		})
	})

	Describe("data-table-rows", func() {
		It("Should forward columns, pagination and filters", func() {
			r := run("data-table-rows", "-t", "table1", "-c", "id,name", "-s", "5", "-n", "10",
				"--filter", "id > 1", "--filter", "name in alpha,beta", "--json")
			Expect(r.code).To(Equal(ExitOK), r.stderr)

			query := server.LastRequest().Query
			Expect(query.Get("tableName")).To(Equal("table1"))
			Expect(query.Get("columns")).To(Equal("id,name"))
			Expect(query.Get("startingRow")).To(Equal("5"))
			Expect(query.Get("numRows")).To(Equal("10"))
			Expect(query.Get("filters")).To(MatchJSON(`[
				{"column": "id", "operator": ">", "value": "1"},
				{"column": "name", "operator": "in", "value": ["alpha", "beta"]}
			]`))

			lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
			Expect(lines).To(HaveLen(2))
			var row map[string]interface{}
			Expect(json.Unmarshal([]byte(lines[0]), &row)).To(Succeed())
			Expect(row).To(HaveKeyWithValue("_datascribe_user", "user1"))
			Expect(row).To(HaveKeyWithValue("name", "alpha"))
		})

		It("Should send the default pagination", func() {
			r := run("data-table", "-t", "table1")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(server.LastRequest().Query.Get("startingRow")).To(Equal("0"))
			Expect(server.LastRequest().Query.Get("numRows")).To(Equal("100"))
			Expect(r.stdout).To(HavePrefix("DataTableRows (2)\n"))
		})
	})

	Describe("data-table-columns", func() {
		It("Should render the columns", func() {
			r := run("data-table-columns", "--table-name", "table1")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(r.stdout).To(HavePrefix("DataTableColumns\n"))
			Expect(r.stdout).To(ContainSubstring("column_name: id"))
		})

		It("Should exit 1 with the server message when the table is unknown", func() {
			r := run("data-table-columns", "-t", "missing")
			Expect(r.code).To(Equal(ExitRuntime))
			Expect(r.stderr).To(Equal("Error: HTTP Error 404 Not Found: Table not found\n"))
		})
	})

	Describe("data-table-rows-count", func() {
		It("Should print the count", func() {
			r := run("data-table-rows-count", "-t", "table1", "--json")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(r.stdout).To(MatchJSON(`{"total_rows": 2}`))
		})
	})

	Describe("materials", func() {
		It("Should look a material up in the default provider", func() {
			r := run("get-material-by-id", "-i", "mp-149", "--json")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(server.LastRequest().Query.Get("provider")).To(Equal("mp"))
			Expect(r.stdout).To(ContainSubstring(`"formula":"Si"`))
		})

		It("Should search several providers", func() {
			r := run("search-materials", "-f", "SiO2", "-e", "Si,O", "--aflow", "--oqmd", "--page", "2", "--size", "5")
			Expect(r.code).To(Equal(ExitOK), r.stderr)
			Expect(r.stdout).To(HavePrefix("MaterialSearchResults\n"))
			Expect(r.stdout).To(ContainSubstring("total: 2"))
			Expect(server.RequestCount("/materials/search")).To(Equal(2))
			Expect(server.LastRequest().Query.Get("page")).To(Equal("2"))
		})

		It("Should reject an invalid page size", func() {
			r := run("search-materials", "-f", "SiO2", "--size", "0")
			Expect(r.code).To(Equal(ExitRuntime))
			Expect(server.Requests()).To(BeEmpty())
		})
	})
})
