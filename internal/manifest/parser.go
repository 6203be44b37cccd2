package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/wasi-tools/wasdk/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Parser represents a Lua manifest parser with platform injection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new manifest parser. A nil detector skips
// platform table injection (manifests then cannot branch on platform).
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseFile parses a Lua manifest from a file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return p.ParseString(ctx, string(data))
}

// ParseString parses a Lua manifest from a string.
// This is useful for testing and in-memory manifests.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Manifest, error) {
	L := newSandboxedVM()
	defer L.Close()

	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractManifest(L)
}

// extractManifest extracts the manifest from a Lua state.
// It expects a global "wasdk" table.
func extractManifest(L *lua.LState) (*Manifest, error) {
	wasdkTable := L.GetGlobal("wasdk")
	if wasdkTable.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'wasdk' table",
			Detail:  fmt.Sprintf("expected table, got %s", wasdkTable.Type()),
		}
	}

	m := &Manifest{}
	table := wasdkTable.(*lua.LTable)

	if v := table.RawGetString("version"); v.Type() == lua.LTString {
		m.Version = v.String()
	} else if v.Type() != lua.LTNil {
		return nil, &ParseError{
			Message: "invalid 'version' field",
			Detail:  fmt.Sprintf("expected string, got %s", v.Type()),
		}
	}

	if v := table.RawGetString("install_dir"); v.Type() == lua.LTString {
		m.InstallDir = v.String()
	} else if v.Type() != lua.LTNil {
		return nil, &ParseError{
			Message: "invalid 'install_dir' field",
			Detail:  fmt.Sprintf("expected string, got %s", v.Type()),
		}
	}

	if v := table.RawGetString("add_to_path"); v.Type() == lua.LTBool {
		m.AddToPath = lua.LVAsBool(v)
	} else if v.Type() != lua.LTNil {
		return nil, &ParseError{
			Message: "invalid 'add_to_path' field",
			Detail:  fmt.Sprintf("expected boolean, got %s", v.Type()),
		}
	}

	if v := table.RawGetString("mirror"); v.Type() == lua.LTString {
		m.Mirror = v.String()
	} else if v.Type() != lua.LTNil {
		return nil, &ParseError{
			Message: "invalid 'mirror' field",
			Detail:  fmt.Sprintf("expected string, got %s", v.Type()),
		}
	}

	if err := m.Validate(); err != nil {
		return nil, &ParseError{
			Message: "manifest validation failed",
			Detail:  err.Error(),
		}
	}

	return m, nil
}
