/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, which serves the resolver to
// Model Context Protocol clients over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/webpackres/cmd/inspect"
	"bennypowers.dev/webpackres/config"
	"bennypowers.dev/webpackres/fs"
	"bennypowers.dev/webpackres/internal/batch"
	"bennypowers.dev/webpackres/internal/logger"
	"bennypowers.dev/webpackres/internal/report"
	"bennypowers.dev/webpackres/internal/version"
	"bennypowers.dev/webpackres/resolver"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the resolver over the Model Context Protocol",
	Long: `Start a Model Context Protocol server on stdin/stdout exposing the
resolve, resolve_batch and inspect tools.

Build configs are cached for the lifetime of the server.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol
	logger.SetOutput(io.Discard)
	return NewServer(fs.Open(viper.GetString("storage"))).Run(cmd.Context(), &mcp.StdioTransport{})
}

// ResolveInput is the input of the resolve tool.
type ResolveInput struct {
	Specifier     string `json:"specifier" jsonschema:"the import or require specifier, e.g. ./button or lodash"`
	ImportingFile string `json:"importingFile" jsonschema:"absolute path of the file containing the import"`
}

// ResolveOutput is the output of the resolve tool.
type ResolveOutput struct {
	Outcome string `json:"outcome" jsonschema:"resolved, external or not found"`
	Path    string `json:"path,omitempty" jsonschema:"the resolved absolute path, when resolved"`
}

// BatchInput is the input of the resolve_batch tool.
type BatchInput struct {
	Requests []ResolveInput `json:"requests" jsonschema:"the requests to resolve"`
}

// BatchEntry is one result of the resolve_batch tool.
type BatchEntry struct {
	Specifier     string `json:"specifier"`
	ImportingFile string `json:"importingFile"`
	Outcome       string `json:"outcome,omitempty"`
	Path          string `json:"path,omitempty"`
	Error         string `json:"error,omitempty"`
}

// BatchOutput is the output of the resolve_batch tool.
type BatchOutput struct {
	Results []BatchEntry `json:"results"`
}

// InspectInput is the input of the inspect tool.
type InspectInput struct {
	File string `json:"file" jsonschema:"absolute path of an importing file"`
}

// InspectOutput is the output of the inspect tool. Externals holds the
// JSON form of the declaration.
type InspectOutput struct {
	File              string            `json:"file"`
	PackageRoot       string            `json:"packageRoot,omitempty"`
	ConfigFile        string            `json:"configFile,omitempty"`
	ConfigError       string            `json:"configError,omitempty"`
	Alias             map[string]string `json:"alias,omitempty"`
	Externals         any               `json:"externals"`
	BaseDirectories   []string          `json:"baseDirectories"`
	Extensions        []string          `json:"extensions"`
	ModuleDirectories []string          `json:"moduleDirectories"`
	Warnings          []string          `json:"warnings,omitempty"`
}

type tools struct {
	fs       fs.FileSystem
	resolver *resolver.Resolver
}

// NewServer creates an MCP server whose tools resolve against filesystem.
func NewServer(filesystem fs.FileSystem) *mcp.Server {
	t := &tools{
		fs: filesystem,
		resolver: resolver.New(resolver.Options{
			FS:     filesystem,
			Config: config.NewCache().LoadForFile,
		}),
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "webpackres",
		Version: version.Get(),
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve an import specifier as the webpack build of the importing file's package would.",
	}, t.resolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_batch",
		Description: "Resolve many import specifiers concurrently. Each result carries its own error.",
	}, t.resolveBatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Show the package root, build config and search options that apply to an importing file.",
	}, t.inspect)

	return server
}

func (t *tools) resolve(ctx context.Context, req *mcp.CallToolRequest, in ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
	if err := checkAbs(in.ImportingFile); err != nil {
		return nil, ResolveOutput{}, err
	}

	result, err := t.resolver.Resolve(in.Specifier, in.ImportingFile)
	if err != nil {
		return nil, ResolveOutput{}, err
	}
	return nil, ResolveOutput{Outcome: result.Outcome.String(), Path: result.Path}, nil
}

func (t *tools) resolveBatch(ctx context.Context, req *mcp.CallToolRequest, in BatchInput) (*mcp.CallToolResult, BatchOutput, error) {
	requests := make([]resolver.Request, len(in.Requests))
	for i, r := range in.Requests {
		if err := checkAbs(r.ImportingFile); err != nil {
			return nil, BatchOutput{}, fmt.Errorf("request %d: %w", i, err)
		}
		requests[i] = resolver.Request{Specifier: r.Specifier, ImportingFile: r.ImportingFile}
	}

	out := BatchOutput{Results: make([]BatchEntry, 0, len(requests))}
	for _, e := range batch.Run(t.resolver, requests) {
		out.Results = append(out.Results, toBatchEntry(e))
	}
	return nil, out, nil
}

func (t *tools) inspect(ctx context.Context, req *mcp.CallToolRequest, in InspectInput) (*mcp.CallToolResult, InspectOutput, error) {
	if err := checkAbs(in.File); err != nil {
		return nil, InspectOutput{}, err
	}

	i := inspect.Inspect(t.fs, in.File)

	data, err := json.Marshal(i.Externals)
	if err != nil {
		return nil, InspectOutput{}, err
	}
	var externals any
	if err := json.Unmarshal(data, &externals); err != nil {
		return nil, InspectOutput{}, err
	}

	return nil, InspectOutput{
		File:              i.File,
		PackageRoot:       i.PackageRoot,
		ConfigFile:        i.ConfigFile,
		ConfigError:       i.ConfigError,
		Alias:             i.Alias,
		Externals:         externals,
		BaseDirectories:   i.BaseDirectories,
		Extensions:        i.Extensions,
		ModuleDirectories: i.ModuleDirectories,
		Warnings:          i.Warnings,
	}, nil
}

func toBatchEntry(e report.Entry) BatchEntry {
	out := BatchEntry{
		Specifier:     e.Request.Specifier,
		ImportingFile: e.Request.ImportingFile,
	}
	if e.Failed() {
		out.Error = e.Err.Error()
		return out
	}
	out.Outcome = e.Result.Outcome.String()
	out.Path = e.Result.Path
	return out
}

func checkAbs(file string) error {
	if file == "" {
		return fmt.Errorf("importing file is required")
	}
	if !filepath.IsAbs(file) {
		return fmt.Errorf("importing file must be absolute, got %q", file)
	}
	return nil
}
