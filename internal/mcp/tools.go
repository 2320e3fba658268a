package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/viktools/viktools/internal/diagrams"
	"github.com/viktools/viktools/internal/toolbox"
)

// Enum values come from the toolbox so the tool schemas list every mode.
var (
	cipherAlgorithms = toolbox.CipherAlgorithms
	encodings        = enumValues(toolbox.Encodings)
	hashAlgorithms   = enumValues(toolbox.HashAlgorithms)
	diagramFormats   = enumValues(diagrams.ValidFormats)
)

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// encryptTool defines the encrypt MCP tool.
var encryptTool = mcp.NewTool("encrypt",
	mcp.WithDescription("Tag text with a key and algorithm label and base64 encode it. This is a reversible demo transform, not real encryption."),
	mcp.WithString("input",
		mcp.Required(),
		mcp.Description("Text to encrypt"),
	),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Key embedded in the output"),
	),
	mcp.WithString("algorithm",
		mcp.Description("Algorithm label (default from configuration)"),
		mcp.Enum(cipherAlgorithms...),
	),
)

// decryptTool defines the decrypt MCP tool.
var decryptTool = mcp.NewTool("decrypt",
	mcp.WithDescription("Reverse the encrypt tool and return the original text."),
	mcp.WithString("input",
		mcp.Required(),
		mcp.Description("Output of the encrypt tool"),
	),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Key used when encrypting"),
	),
)

// encodeTool defines the encode MCP tool.
var encodeTool = mcp.NewTool("encode",
	mcp.WithDescription("Encode text as Base64, URL component, HTML entities or hex."),
	mcp.WithString("input",
		mcp.Required(),
		mcp.Description("Text to encode"),
	),
	mcp.WithString("type",
		mcp.Description("Encoding to apply (default from configuration)"),
		mcp.Enum(encodings...),
	),
)

// decodeTool defines the decode MCP tool.
var decodeTool = mcp.NewTool("decode",
	mcp.WithDescription("Decode Base64, URL component, HTML entity or hex text."),
	mcp.WithString("input",
		mcp.Required(),
		mcp.Description("Text to decode"),
	),
	mcp.WithString("type",
		mcp.Description("Encoding to reverse (default from configuration)"),
		mcp.Enum(encodings...),
	),
)

// hashTool defines the hash MCP tool.
var hashTool = mcp.NewTool("hash",
	mcp.WithDescription("Compute the lowercase hex digest of UTF-8 text."),
	mcp.WithString("input",
		mcp.Required(),
		mcp.Description("Text to hash"),
	),
	mcp.WithString("algorithm",
		mcp.Description("Digest algorithm (default from configuration). md5 is not available."),
		mcp.Enum(hashAlgorithms...),
	),
)

// jwtEncodeTool defines the jwt_encode MCP tool.
var jwtEncodeTool = mcp.NewTool("jwt_encode",
	mcp.WithDescription("Build a structurally valid JWT from a JSON header and payload. The signature is simulated."),
	mcp.WithString("header",
		mcp.Description("JSON header (default {\"alg\":\"HS256\",\"typ\":\"JWT\"})"),
	),
	mcp.WithString("payload",
		mcp.Required(),
		mcp.Description("JSON payload"),
	),
	mcp.WithString("secret",
		mcp.Required(),
		mcp.Description("Signing secret"),
	),
)

// jwtDecodeTool defines the jwt_decode MCP tool.
var jwtDecodeTool = mcp.NewTool("jwt_decode",
	mcp.WithDescription("Decode a JWT into its header, payload and signature without verifying it."),
	mcp.WithString("token",
		mcp.Required(),
		mcp.Description("JWT in compact form"),
	),
)

// jwtVerifyTool defines the jwt_verify MCP tool.
var jwtVerifyTool = mcp.NewTool("jwt_verify",
	mcp.WithDescription("Verify a JWT signature. Always reports that a verification service is required."),
	mcp.WithString("token",
		mcp.Required(),
		mcp.Description("JWT in compact form"),
	),
	mcp.WithString("secret",
		mcp.Required(),
		mcp.Description("Signing secret"),
	),
)

// diagramGenerateTool defines the diagram_generate MCP tool.
var diagramGenerateTool = mcp.NewTool("diagram_generate",
	mcp.WithDescription("Prepare a PlantUML diagram. Returns a placeholder with the remote rendering URL; no image is produced."),
	mcp.WithString("source",
		mcp.Required(),
		mcp.Description("PlantUML source"),
	),
	mcp.WithString("format",
		mcp.Description("Output format (default from configuration)"),
		mcp.Enum(diagramFormats...),
	),
)

// diagramValidateTool defines the diagram_validate MCP tool.
var diagramValidateTool = mcp.NewTool("diagram_validate",
	mcp.WithDescription("Check that PlantUML source is non-empty and its start and end tags agree."),
	mcp.WithString("source",
		mcp.Required(),
		mcp.Description("PlantUML source"),
	),
)
