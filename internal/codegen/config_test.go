package codegen

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/vvakame/apollowrap/plugin"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(heredoc.Doc(`
		schema: schema.graphqls
		documents:
		  - operations/*.graphql
		  - extra.graphql
		generates:
		  src/generated/client.ts:
		    plugins:
		      - typescript
		      - typescript-operations
		      - apollo-client-wrappers:
		          apolloClientName: apollo
		    config:
		      apolloClientImport: 'import { apollo } from "../apollo";'
		      scalars:
		        DateTime: string
		  src/generated/types.ts:
		    plugins:
		      - typescript
	`)))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Schema) != 1 || cfg.Schema[0] != "schema.graphqls" {
		t.Errorf("unexpected schema: %v", cfg.Schema)
	}
	if len(cfg.Documents) != 2 || cfg.Documents[1] != "extra.graphql" {
		t.Errorf("unexpected documents: %v", cfg.Documents)
	}

	paths := cfg.TargetPaths()
	if len(paths) != 2 || paths[0] != "src/generated/client.ts" || paths[1] != "src/generated/types.ts" {
		t.Fatalf("unexpected targets: %v", paths)
	}

	target := cfg.Generates["src/generated/client.ts"]
	entries := target.Entries()
	wantKinds := []plugin.Kind{plugin.KindTypeScript, plugin.KindTypeScriptOperations, plugin.KindApolloClientWrappers}
	if len(entries) != len(wantKinds) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if entries[i].Kind != kind {
			t.Errorf("entries[%d] = %v, want %v", i, entries[i].Kind, kind)
		}
	}

	pluginCfg, err := target.PluginConfig()
	if err != nil {
		t.Fatal(err)
	}
	if v := pluginCfg.ApolloClientImport; v != `import { apollo } from "../apollo";` {
		t.Errorf("unexpected apolloClientImport: %v", v)
	}
	if v := pluginCfg.ClientName(); v != "apollo" {
		t.Errorf("unexpected apolloClientName: %v", v)
	}

	if _, ok := cfg.Generates["src/generated/types.ts"].Lookup(plugin.Name); ok {
		t.Error("types.ts should not list the wrapper plugin")
	}
}

func TestPluginConfigOverride(t *testing.T) {
	cfg, err := ParseConfig([]byte(heredoc.Doc(`
		documents: "*.graphql"
		generates:
		  out.ts:
		    plugins:
		      - apollo-client-wrappers:
		          apolloClientImport: 'import { inline } from "./inline";'
		    config:
		      apolloClientImport: 'import { shared } from "./shared";'
		      apolloClientName: shared
	`)))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Documents) != 1 || cfg.Documents[0] != "*.graphql" {
		t.Errorf("unexpected documents: %v", cfg.Documents)
	}

	pluginCfg, err := cfg.Generates["out.ts"].PluginConfig()
	if err != nil {
		t.Fatal(err)
	}
	if v := pluginCfg.ApolloClientImport; v != `import { inline } from "./inline";` {
		t.Errorf("inline config should win: %v", v)
	}
	if v := pluginCfg.ApolloClientName; v != "shared" {
		t.Errorf("target config should be kept: %v", v)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			name:   "no targets",
			source: `documents: "*.graphql"`,
		},
		{
			name: "no plugins",
			source: heredoc.Doc(`
				generates:
				  out.ts:
				    plugins: []
			`),
		},
		{
			name: "multiple keys in plugin entry",
			source: heredoc.Doc(`
				generates:
				  out.ts:
				    plugins:
				      - { typescript: {}, typescript-operations: {} }
			`),
		},
		{
			name: "plugin config is not a mapping",
			source: heredoc.Doc(`
				generates:
				  out.ts:
				    plugins:
				      - apollo-client-wrappers: [a, b]
			`),
		},
		{
			name: "documents is not a string list",
			source: heredoc.Doc(`
				documents:
				  - { a: b }
				generates:
				  out.ts:
				    plugins: [typescript]
			`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.source))
			if err == nil {
				t.Error("error expected")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/project/codegen.yml", []byte(heredoc.Doc(`
		documents: "*.graphql"
		generates:
		  /abs/out.ts:
		    plugins: [typescript]
		  rel/out.ts:
		    plugins: [typescript]
	`)), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fs, "/project/codegen.yml")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseDir != "/project" {
		t.Errorf("unexpected base dir: %v", cfg.BaseDir)
	}
	if v := cfg.Resolve("rel/out.ts"); v != "/project/rel/out.ts" {
		t.Errorf("unexpected resolved path: %v", v)
	}
	if v := cfg.Resolve("/abs/out.ts"); v != "/abs/out.ts" {
		t.Errorf("unexpected resolved path: %v", v)
	}

	if _, err := LoadConfig(fs, "/project/missing.yml"); err == nil {
		t.Error("error expected")
	}
}
