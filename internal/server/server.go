package server

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"n8n-mcp/internal/config"
	"n8n-mcp/internal/dispatch"
	"n8n-mcp/internal/n8n"
	"n8n-mcp/pkg/logging"
)

// Name is the server name announced during initialization.
const Name = "n8n-management-mcp"

// Options configures a new Instance.
type Options struct {
	// N8N holds the backend connection settings. Nil or incomplete settings
	// are allowed; tool calls then fail with a configuration error.
	N8N *config.N8NConfig

	// Version is announced to clients and reported by the server-info resource.
	Version string

	// DenyDestructive refuses calls to tools annotated as destructive.
	DenyDestructive bool

	// ClientOptions are passed to n8n.NewClient.
	ClientOptions []n8n.Option
}

// Instance is one MCP server bound to zero or one n8n client.
type Instance struct {
	mcp             *server.MCPServer
	n8nConfig       *config.N8NConfig
	version         string
	denyDestructive bool
	table           dispatch.Table
	clientOptions   []n8n.Option

	mu     sync.Mutex
	client dispatch.Backend
}

// New builds an Instance with the catalog, prompts and resources registered.
func New(opts Options) *Instance {
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	inst := &Instance{
		version:         version,
		denyDestructive: opts.DenyDestructive,
		table:           dispatch.NewTable(),
		clientOptions:   opts.ClientOptions,
	}
	if opts.N8N != nil {
		cfg := *opts.N8N
		inst.n8nConfig = &cfg
	}

	hooks := &server.Hooks{}
	hooks.AddBeforeCallTool(inst.routeUnknownTool)

	inst.mcp = server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(true),
		server.WithToolFilter(catalogOrder),
		server.WithHooks(hooks),
		server.WithRecovery(),
	)

	inst.registerTools()
	inst.registerPrompts()
	inst.registerResources()

	if inst.n8nConfig != nil && inst.n8nConfig.Complete() {
		if _, err := inst.backend(); err != nil {
			logging.Warn("Server", "n8n client not created at startup: %v", err)
		}
	}

	return inst
}

// MCPServer returns the underlying mcp-go server for transports to serve.
func (i *Instance) MCPServer() *server.MCPServer {
	return i.mcp
}

// Version returns the announced server version.
func (i *Instance) Version() string {
	return i.version
}

// Connected reports whether complete connection settings were supplied.
func (i *Instance) Connected() bool {
	return i.n8nConfig != nil && i.n8nConfig.Complete()
}

// N8NURL returns the configured n8n URL, or "" when none was supplied.
func (i *Instance) N8NURL() string {
	if i.n8nConfig == nil {
		return ""
	}
	return i.n8nConfig.URL
}

// backend returns the cached client, creating it on first use.
func (i *Instance) backend() (dispatch.Backend, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.client != nil {
		return i.client, nil
	}
	if err := i.n8nConfig.RequireComplete(); err != nil {
		return nil, err
	}

	c, err := n8n.NewClient(*i.n8nConfig, i.clientOptions...)
	if err != nil {
		return nil, err
	}
	logging.Debug("Server", "Created n8n client for %s%s", c.BaseURL(), c.APIPath())
	i.client = c
	return c, nil
}
