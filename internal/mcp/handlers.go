package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
)

const defaultJWTHeader = `{"alg":"HS256","typ":"JWT"}`

// toolResult converts a toolbox outcome into a tool result. Unsupported
// operations include their placeholder after the message.
func toolResult(res toolbox.Result, err error) *mcp.CallToolResult {
	if err != nil {
		msg := err.Error()
		if ph := toolbox.PlaceholderOf(err); ph != "" && ph != msg {
			msg += "\n\n" + ph
		}
		return mcp.NewToolResultError(msg)
	}
	return mcp.NewToolResultText(res.Output)
}

func missing(name string) *mcp.CallToolResult {
	return mcp.NewToolResultError("missing required parameter: " + name)
}

func (s *Server) handleEncrypt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return missing("input"), nil
	}
	key, err := request.RequireString("key")
	if err != nil {
		return missing("key"), nil
	}
	return toolResult(s.toolbox.Encrypt(toolbox.CipherRequest{
		Input:     input,
		Key:       key,
		Algorithm: request.GetString("algorithm", ""),
	})), nil
}

func (s *Server) handleDecrypt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return missing("input"), nil
	}
	key, err := request.RequireString("key")
	if err != nil {
		return missing("key"), nil
	}
	return toolResult(s.toolbox.Decrypt(toolbox.CipherRequest{Input: input, Key: key})), nil
}

func (s *Server) handleEncode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return missing("input"), nil
	}
	return toolResult(s.toolbox.Encode(toolbox.CodecRequest{
		Input: input,
		Type:  toolbox.Encoding(request.GetString("type", "")),
	})), nil
}

func (s *Server) handleDecode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return missing("input"), nil
	}
	return toolResult(s.toolbox.Decode(toolbox.CodecRequest{
		Input: input,
		Type:  toolbox.Encoding(request.GetString("type", "")),
	})), nil
}

func (s *Server) handleHash(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return missing("input"), nil
	}
	return toolResult(s.toolbox.Hash(toolbox.HashRequest{
		Input:     input,
		Algorithm: toolbox.HashAlgorithm(request.GetString("algorithm", "")),
	})), nil
}

func (s *Server) handleJWTEncode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := request.RequireString("payload")
	if err != nil {
		return missing("payload"), nil
	}
	secret, err := request.RequireString("secret")
	if err != nil {
		return missing("secret"), nil
	}
	return toolResult(s.toolbox.JWTEncode(toolbox.JWTEncodeRequest{
		Header:  request.GetString("header", defaultJWTHeader),
		Payload: payload,
		Secret:  secret,
	})), nil
}

func (s *Server) handleJWTDecode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := request.RequireString("token")
	if err != nil {
		return missing("token"), nil
	}
	return toolResult(s.toolbox.JWTDecode(toolbox.JWTDecodeRequest{Token: token})), nil
}

func (s *Server) handleJWTVerify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := request.RequireString("token")
	if err != nil {
		return missing("token"), nil
	}
	secret, err := request.RequireString("secret")
	if err != nil {
		return missing("secret"), nil
	}
	return toolResult(s.toolbox.JWTVerify(toolbox.JWTVerifyRequest{Token: token, Secret: secret})), nil
}

func (s *Server) handleDiagramGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return missing("source"), nil
	}
	return toolResult(s.toolbox.DiagramGenerate(toolbox.DiagramRequest{
		Source: source,
		Format: request.GetString("format", ""),
	})), nil
}

func (s *Server) handleDiagramValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return missing("source"), nil
	}
	if err := diagrams.Validate(source); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid diagram: %v", err)), nil
	}
	return mcp.NewToolResultText("Diagram source is valid."), nil
}
