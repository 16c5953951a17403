package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstyle/pkg/config"
	"github.com/yaklabco/mdstyle/pkg/lint"
	"github.com/yaklabco/mdstyle/pkg/mdast"
	mdparser "github.com/yaklabco/mdstyle/pkg/parser/goldmark"
)

// recordingAnalyzer captures fed nodes and emits canned violations.
type recordingAnalyzer struct {
	rc   *lint.RuleContext
	fed  []mdast.NodeKind
	emit []lint.Violation
}

func (a *recordingAnalyzer) Feed(n *mdast.Node)         { a.fed = append(a.fed, n.Kind) }
func (a *recordingAnalyzer) Finalize() []lint.Violation { return a.emit }

func newTestEngine(t *testing.T, registry *lint.Registry) *lint.Engine {
	t.Helper()
	return lint.NewEngine(mdparser.New(mdparser.FlavorCommonMark), registry)
}

func TestEngine_FeedsAllNodesRegardlessOfKinds(t *testing.T) {
	t.Parallel()

	// Declared kinds hint at the span cache; they must not narrow the
	// feed. A rule declaring only headings still sees the whole tree.
	var got *recordingAnalyzer
	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T001",
		Alias: "test-headings",
		Kinds: []mdast.NodeKind{mdast.NodeHeading},
		New: func(rc *lint.RuleContext) lint.Analyzer {
			got = &recordingAnalyzer{rc: rc}
			return got
		},
	})

	engine := newTestEngine(t, r)
	content := []byte("# One\n\nPara text.\n\n## Two\n")
	result, err := engine.CheckFile(context.Background(), "test.md", content, config.New())
	require.NoError(t, err)
	require.Empty(t, result.RuleErrors)

	require.NotNil(t, got)
	counts := make(map[mdast.NodeKind]int)
	for _, k := range got.fed {
		counts[k]++
	}
	assert.Equal(t, 1, counts[mdast.NodeDocument])
	assert.Equal(t, 2, counts[mdast.NodeHeading])
	assert.Equal(t, 1, counts[mdast.NodeParagraph])
	assert.NotZero(t, counts[mdast.NodeText])
}

func TestEngine_NoKindsStillFed(t *testing.T) {
	t.Parallel()

	var got *recordingAnalyzer
	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T002",
		Alias: "test-line-scan",
		New: func(rc *lint.RuleContext) lint.Analyzer {
			got = &recordingAnalyzer{rc: rc}
			return got
		},
	})

	engine := newTestEngine(t, r)
	_, err := engine.CheckFile(context.Background(), "test.md", []byte("# One\n"), config.New())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, got.fed, mdast.NodeDocument)
	assert.Contains(t, got.fed, mdast.NodeHeading)
}

func TestEngine_OffRuleNeverConstructed(t *testing.T) {
	t.Parallel()

	calls := 0
	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T003",
		Alias: "test-off",
		New: func(rc *lint.RuleContext) lint.Analyzer {
			calls++
			return &recordingAnalyzer{rc: rc}
		},
	})

	off := "off"
	cfg := config.New()
	cfg.Rules["T003"] = config.RuleConfig{Severity: &off}

	engine := newTestEngine(t, r)
	result, err := engine.CheckFile(context.Background(), "test.md", []byte("# One\n"), cfg)
	require.NoError(t, err)
	assert.Zero(t, calls, "factory must not run for a rule resolved to off")
	assert.Empty(t, result.Violations)
}

func TestEngine_ViolationOrderIsRegistryThenEmission(t *testing.T) {
	t.Parallel()

	// The second-registered rule emits a violation on an earlier line than
	// the first-registered rule. The engine must not re-sort by location.
	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T010",
		Alias: "test-late-line",
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &recordingAnalyzer{emit: []lint.Violation{
				rc.Violation(lint.LineRange(5, 0, 1), "late"),
			}}
		},
	})
	r.Register(&lint.Descriptor{
		ID:    "T011",
		Alias: "test-early-line",
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &recordingAnalyzer{emit: []lint.Violation{
				rc.Violation(lint.LineRange(0, 0, 1), "early"),
			}}
		},
	})

	engine := newTestEngine(t, r)
	result, err := engine.CheckFile(context.Background(), "test.md",
		[]byte("a\nb\nc\nd\ne\nf\n"), config.New())
	require.NoError(t, err)

	require.Len(t, result.Violations, 2)
	assert.Equal(t, "T010", result.Violations[0].RuleID)
	assert.Equal(t, 5, result.Violations[0].StartLine())
	assert.Equal(t, "T011", result.Violations[1].RuleID)
	assert.Equal(t, 0, result.Violations[1].StartLine())
}

type panickingAnalyzer struct{ where string }

func (a *panickingAnalyzer) Feed(n *mdast.Node) {
	if a.where == "feed" {
		panic("boom in feed")
	}
}

func (a *panickingAnalyzer) Finalize() []lint.Violation {
	if a.where == "finalize" {
		panic("boom in finalize")
	}
	return nil
}

func TestEngine_PanicIsolation(t *testing.T) {
	t.Parallel()

	for _, where := range []string{"feed", "finalize"} {
		where := where
		t.Run(where, func(t *testing.T) {
			t.Parallel()

			r := lint.NewRegistry()
			r.Register(&lint.Descriptor{
				ID:    "T020",
				Alias: "test-panics",
				Kinds: []mdast.NodeKind{mdast.NodeHeading},
				New: func(rc *lint.RuleContext) lint.Analyzer {
					return &panickingAnalyzer{where: where}
				},
			})
			r.Register(&lint.Descriptor{
				ID:    "T021",
				Alias: "test-survives",
				New: func(rc *lint.RuleContext) lint.Analyzer {
					return &recordingAnalyzer{emit: []lint.Violation{
						rc.Violation(lint.LineRange(0, 0, 1), "still here"),
					}}
				},
			})

			engine := newTestEngine(t, r)
			result, err := engine.CheckFile(context.Background(), "test.md",
				[]byte("# One\n"), config.New())
			require.NoError(t, err)

			require.Contains(t, result.RuleErrors, "T020")
			assert.ErrorContains(t, result.RuleErrors["T020"], "boom in "+where)
			require.Len(t, result.Violations, 1)
			assert.Equal(t, "T021", result.Violations[0].RuleID)
		})
	}
}

func TestEngine_EmptyDocument(t *testing.T) {
	t.Parallel()

	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T030",
		Alias: "test-empty",
		Kinds: []mdast.NodeKind{mdast.NodeHeading},
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &recordingAnalyzer{}
		},
	})

	engine := newTestEngine(t, r)
	result, err := engine.CheckFile(context.Background(), "empty.md", nil, config.New())
	require.NoError(t, err)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.RuleErrors)
	assert.Equal(t, 1, result.Doc.Lines.Count())
}

func TestEngine_CancelledContext(t *testing.T) {
	t.Parallel()

	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T040",
		Alias: "test-cancel",
		Kinds: []mdast.NodeKind{mdast.NodeHeading},
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &recordingAnalyzer{}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := newTestEngine(t, r)
	_, err := engine.CheckFile(ctx, "test.md", []byte("# One\n"), config.New())
	require.Error(t, err)
}

func TestEngine_ViolationCarriesRuleIdentity(t *testing.T) {
	t.Parallel()

	errSev := "error"
	r := lint.NewRegistry()
	r.Register(&lint.Descriptor{
		ID:    "T050",
		Alias: "test-identity",
		New: func(rc *lint.RuleContext) lint.Analyzer {
			return &recordingAnalyzer{emit: []lint.Violation{
				rc.Violation(lint.LineRange(0, 0, 4), "msg"),
			}}
		},
	})

	cfg := config.New()
	cfg.Rules["T050"] = config.RuleConfig{Severity: &errSev}

	engine := newTestEngine(t, r)
	result, err := engine.CheckFile(context.Background(), "doc.md", []byte("text\n"), cfg)
	require.NoError(t, err)

	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "T050", v.RuleID)
	assert.Equal(t, "test-identity", v.RuleName)
	assert.Equal(t, "doc.md", v.FilePath)
	assert.Equal(t, config.SeverityError, v.Severity)
	assert.Equal(t, 1, result.CountBySeverity(config.SeverityError))
}
