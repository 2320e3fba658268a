package toolbox

// Operation names, shared by the HTTP API, the websocket channel and MCP.
const (
	OpEncrypt         = "encrypt"
	OpDecrypt         = "decrypt"
	OpEncode          = "encode"
	OpDecode          = "decode"
	OpHash            = "hash"
	OpJWTEncode       = "jwt-encode"
	OpJWTDecode       = "jwt-decode"
	OpJWTVerify       = "jwt-verify"
	OpDiagramGenerate = "diagram-generate"
	OpDiagramDownload = "diagram-download"
)

// Encoding selects the codec used by Encode and Decode.
type Encoding string

const (
	EncodingBase64  Encoding = "base64"
	EncodingURL     Encoding = "url"
	EncodingHTML    Encoding = "html"
	EncodingHex     Encoding = "hex"
	EncodingHexUTF8 Encoding = "hex-utf8"
)

// Encodings lists the supported encodings in menu order.
var Encodings = []Encoding{EncodingBase64, EncodingURL, EncodingHTML, EncodingHex, EncodingHexUTF8}

// HashAlgorithm names a digest.
type HashAlgorithm string

const (
	HashMD5    HashAlgorithm = "md5"
	HashSHA1   HashAlgorithm = "sha1"
	HashSHA256 HashAlgorithm = "sha256"
	HashSHA512 HashAlgorithm = "sha512"
)

// HashAlgorithms lists the menu choices, md5 included even though it
// always reports that it needs a backend.
var HashAlgorithms = []HashAlgorithm{HashMD5, HashSHA1, HashSHA256, HashSHA512}

// CipherAlgorithms are the labels offered by the demo cipher. The label is
// only embedded in the output; no real cipher runs.
var CipherAlgorithms = []string{"AES", "DES", "3DES", "RSA"}

// CipherSeparator joins the parts of a demo cipher payload.
const CipherSeparator = "_"

// CipherRequest is the input to Encrypt and Decrypt.
type CipherRequest struct {
	Input     string `json:"input"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm,omitempty"`
}

// CodecRequest is the input to Encode and Decode.
type CodecRequest struct {
	Input string   `json:"input"`
	Type  Encoding `json:"type,omitempty"`
}

// HashRequest is the input to Hash.
type HashRequest struct {
	Input     string        `json:"input"`
	Algorithm HashAlgorithm `json:"algorithm,omitempty"`
}

// JWTEncodeRequest is the input to JWTEncode.
type JWTEncodeRequest struct {
	Header  string `json:"header"`
	Payload string `json:"payload"`
	Secret  string `json:"secret"`
}

// JWTDecodeRequest is the input to JWTDecode.
type JWTDecodeRequest struct {
	Token string `json:"token"`
}

// JWTVerifyRequest is the input to JWTVerify.
type JWTVerifyRequest struct {
	Token  string `json:"token"`
	Secret string `json:"secret"`
}

// DiagramRequest is the input to DiagramGenerate.
type DiagramRequest struct {
	Source string `json:"source"`
	Format string `json:"format,omitempty"`
}

// Result is the successful outcome of an operation.
type Result struct {
	Output  string `json:"output"`
	Message string `json:"message"`
}
