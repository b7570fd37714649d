package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/logging"
	"github.com/nodeadmin/geneweaver-core/parse"
)

const batchText = `:ABBR
=Full Name
+A description.
@Mus Musculus
!P-Value < 0.05
%Entrez
gene1	0.01
gene2	0.10
gene3	0.05
`

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(logging.Reset)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseCommandStdin(t *testing.T) {
	out, _, err := run(t, batchText, "parse", "-", "--format", "json")
	require.NoError(t, err)

	var res parse.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, enum.GeneweaverBatch, res.Type)
	require.Len(t, res.Genesets, 1)
	assert.Equal(t, "Full Name", res.Genesets[0].Name)
	assert.Len(t, res.Genesets[0].Values, 3)
}

func TestParseCommandOutputFile(t *testing.T) {
	in := writeTemp(t, "genes.txt", "gene1 1.5\ngene2 2\n")
	dst := filepath.Join(t.TempDir(), "out.yaml")

	_, _, err := run(t, "", "parse", in, "-f", "yaml", "-o", dst)
	require.NoError(t, err)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "type: values\n")
	assert.Contains(t, string(b), "symbol: gene1")
}

func TestParseCommandErrors(t *testing.T) {
	_, _, err := run(t, ":ABBR\n=Name\n+Desc\ngene1\tx\n", "parse", "-")
	assert.ErrorIs(t, err, parse.ErrInvalidValueLine)

	_, _, err = run(t, "", "parse", "book.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gwcore xlsx")

	_, _, err = run(t, batchText, "parse", "-", "--format", "xml")
	assert.Error(t, err)
}

func TestDetectCommand(t *testing.T) {
	batch := writeTemp(t, "a.gw", batchText)
	values := writeTemp(t, "b.txt", "\n# comment\ngene1 0.5\n")

	out, _, err := run(t, "", "detect", batch, values)
	require.NoError(t, err)
	assert.Equal(t, batch+"\tbatch\n"+values+"\tvalues\n", out)

	_, _, err = run(t, "# only a comment\n", "detect", "-")
	assert.ErrorIs(t, err, parse.ErrUnsupportedFileType)
}

func TestRenderCommand(t *testing.T) {
	out, _, err := run(t, batchText, "render", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "! P-Value < 0.05\n@ Mus Musculus\n% Entrez\n"), out)
	assert.True(t, strings.HasSuffix(out, "\ngene1\t0.01\ngene2\t0.1\ngene3\t0.05\n"), out)

	out, _, err = run(t, batchText, "render", "-", "--to", "csv", "--sep", ";")
	require.NoError(t, err)
	assert.Contains(t, out, "#name;Full Name\n")
	assert.Contains(t, out, "gene;value\ngene1;0.01\n")

	out, _, err = run(t, batchText, "render", "-", "--to", "genelist", "--sep", ",")
	require.NoError(t, err)
	assert.Equal(t, "gene1,0.01\ngene2,0.1\ngene3,0.05\n", out)

	_, _, err = run(t, "gene1 1\n", "render", "-")
	assert.ErrorIs(t, err, parse.ErrUnsupportedFileType)

	_, _, err = run(t, batchText, "render", "-", "--to", "csv", "--sep", ";;")
	assert.Error(t, err)
}

func TestCheckCommandTable(t *testing.T) {
	out, _, err := run(t, batchText, "check", "-", "--genes")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "NAME"), out)
	assert.Contains(t, lines[1], "Full Name")
	assert.Contains(t, lines[1], "P-Value < 0.05")
	assert.Contains(t, out, "gene2\t0.1\tfail")
	assert.Contains(t, out, "gene3\t0.05\tpass")
}

func TestCheckCommandJSON(t *testing.T) {
	out, _, err := run(t, batchText, "check", "-", "-f", "json", "--score", "P-Value < 0.01")
	require.NoError(t, err)

	var reports []checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "P-Value < 0.01", reports[0].Score)
	assert.Equal(t, 3, reports[0].Summary.Count)
	assert.Equal(t, 1, reports[0].Summary.Passing)
	assert.InDelta(t, 0.05, reports[0].Summary.Median, 1e-12)
}

func TestCheckCommandValuesFile(t *testing.T) {
	_, _, err := run(t, "a 0.2\nb 0.8\n", "check", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--score")

	out, _, err := run(t, "a 0.2\nb 0.8\nc 0.5\n", "check", "-", "-f", "json", "-s", "0.3 < Correlation < 0.9")
	require.NoError(t, err)
	var reports []checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	assert.Equal(t, 2, reports[0].Summary.Passing)

	_, _, err = run(t, "a 0.2\n", "check", "-", "-s", "Correlation")
	assert.ErrorIs(t, err, parse.ErrInvalidScoreThreshold)
}

const pubmedXML = `<PubmedArticleSet><PubmedArticle><Article>
<Journal><Title>Neurobiology of aging</Title></Journal>
<ArticleTitle>Aging hippocampus.</ArticleTitle>
<PubDate><Year>2008</Year></PubDate>
<AuthorList><Author><LastName>Smith</LastName><ForeName>Jane</ForeName></Author></AuthorList>
</Article></PubmedArticle></PubmedArticleSet>`

func TestPubmedCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "17931734" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(pubmedXML))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("GW_PUBMED_XML_SVC_URL", srv.URL+"/efetch?id={0}")

	out, _, err := run(t, "", "pubmed", "17931734", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Aging hippocampus.\n")
	assert.Contains(t, out, "authors: Jane Smith\n")
	assert.Contains(t, out, "year: 2008\n")

	out, _, err = run(t, "", "pubmed", "17931734", "--raw")
	require.NoError(t, err)
	assert.Equal(t, pubmedXML, out)

	_, _, err = run(t, "", "pubmed", "1")
	assert.Error(t, err)
}

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "genes.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXCommand(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"Experiment: knockout"},
		{"Symbol", "Fold", "P-Value"},
		{"Gad1", 2.5, 0.01},
		{"Gad2", 1.1, 0.2},
	})

	out, _, err := run(t, "", "xlsx", path)
	require.NoError(t, err)
	assert.Equal(t, "Gad1\t2.5\nGad2\t1.1\n", out)

	out, _, err = run(t, "", "xlsx", path, "--value-col", "p-value", "-t", "json")
	require.NoError(t, err)
	var sheet workbookSheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	assert.Equal(t, []string{"Experiment: knockout"}, sheet.Metadata)
	assert.Equal(t, []string{"Symbol", "Fold", "P-Value"}, sheet.Headers)
	require.Len(t, sheet.Values, 2)
	assert.Equal(t, 0.2, sheet.Values[1].Value)

	out, _, err = run(t, "", "xlsx", path, "-t", "maps")
	require.NoError(t, err)
	assert.Contains(t, out, `"Symbol": "Gad1"`)

	_, _, err = run(t, "", "xlsx", path, "--value-col", "nope")
	assert.Error(t, err)
}

func TestRootConfigFlags(t *testing.T) {
	cfg := writeTemp(t, "gwcore.yaml", "log_format: json\n")
	_, errOut, err := run(t, "gene1 1\n", "--config", cfg, "--log-level", "debug", "detect", "-")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"config.loaded"`)

	_, _, err = run(t, "", "--log-level", "loud", "detect", "-")
	assert.Error(t, err)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "detect", "-")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrintError(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	printError(&buf, parse.ErrUnsupportedFileType)
	assert.Equal(t, "error: unsupported file type\n", buf.String())
}
