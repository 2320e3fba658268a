package toolbox

import (
	"encoding/json"
	"time"
)

// Seeds are the example values a fresh toolbox view starts with.
type Seeds struct {
	JWTHeader  string `json:"jwt_header"`
	JWTPayload string `json:"jwt_payload"`
	Diagram    string `json:"diagram"`
}

type jwtHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

type jwtPayload struct {
	Sub  string `json:"sub"`
	Name string `json:"name"`
	Iat  int64  `json:"iat"`
}

// ExampleDiagram is the sequence diagram offered as a starting point.
const ExampleDiagram = `@startuml
Alice -> Bob: Hello
Bob -> Alice: Hi there!
Alice -> Bob: How are you?
Bob -> Alice: I'm fine, thanks!
@enduml`

// Defaults returns the seed values, with the payload issued at now.
func Defaults(now time.Time) Seeds {
	header, _ := json.MarshalIndent(jwtHeader{Alg: "HS256", Typ: "JWT"}, "", "  ")
	payload, _ := json.MarshalIndent(jwtPayload{Sub: "user123", Name: "User Name", Iat: now.Unix()}, "", "  ")

	return Seeds{
		JWTHeader:  string(header),
		JWTPayload: string(payload),
		Diagram:    ExampleDiagram,
	}
}
