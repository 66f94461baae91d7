package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textclean/gen/mockery"
	"github.com/walteh/textclean/pkg/config"
)

const analysisView = `import SwiftUI

struct AnalysisView: View {
    let heroId: Int

    var body: some View {
        Text(HeroService.shared.getHeroName(heroId: heroId))
    }

    private func getHeroName(heroId: Int) -> String {
        switch heroId {
        case 1: return "Anti-Mage"
        case 2: return "Axe"
        default: return "Unknown"
        }
    }



    private func getHeroNamePart2(heroId: Int) -> String {
        switch heroId {
        case 100: return "Primal Beast"
        default: return getHeroNamePart3(heroId: heroId)
        }
    }

    private func getHeroNamePart3(heroId: Int) -> String {
        let fallback = "Unknown"
        switch heroId {
        case 120: return "Pangolier"
        default: return fallback
        }
    }
}
`

const analysisViewCleaned = `import SwiftUI

struct AnalysisView: View {
    let heroId: Int

    var body: some View {
        Text(HeroService.shared.getHeroName(heroId: heroId))
    }

    ` + config.MarkerComment + `

    ` + config.MarkerComment + `

    ` + config.MarkerComment + `
}
`

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// jobFor is the built-in job pointed at the given files
func jobFor(paths ...string) *config.Config {
	cfg := config.Default()
	cfg.Targets = paths
	return cfg
}

func expectDefaultNotices(rep *mockery.MockReporter_operation, times int) {
	for _, msg := range config.DefaultMessages {
		rep.EXPECT().Notice(msg).Return().Times(times)
	}
}

func newOperator(t *testing.T, cfg *config.Config, rep Reporter, verbose bool) Operator {
	t.Helper()
	op, err := New(Options{Config: cfg, Reporter: rep, Verbose: verbose})
	require.NoError(t, err)
	return op
}
