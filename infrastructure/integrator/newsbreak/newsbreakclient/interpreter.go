package newsbreakclient

import (
	stdjson "encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// json preserva números como json.Number para não perder precisão em IDs e métricas
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

type jsonNumber = stdjson.Number

const (
	maxErrorBodyLength = 200

	// unknownCode representa um code presente mas ilegível
	unknownCode = -1
)

// ResponseInterpreter classifica uma resposta HTTP em exatamente um Outcome.
//
// A API da NewsBreak usa dois envelopes de erro incompatíveis: o padrão, com
// "code"/"errMsg", e outro com "timestamp"/"url" e sem "code". Os dois são
// reconhecidos como ApiError.
type ResponseInterpreter struct {
	validate *validator.Validate
}

func NewResponseInterpreter() *ResponseInterpreter {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &ResponseInterpreter{validate: v}
}

// Interpret classifica a resposta. Quando target não é nil e a resposta é de
// sucesso, o campo data é decodificado em target e validado.
func (i *ResponseInterpreter) Interpret(statusCode int, body []byte, target any) Outcome {
	var envelope map[string]jsoniter.RawMessage
	parseErr := json.Unmarshal(body, &envelope)
	if parseErr == nil && envelope == nil {
		parseErr = errors.New("empty or null body")
	}

	if statusCode >= 400 {
		if parseErr != nil {
			return APIErrorOutcome(statusCode, statusCode, fmt.Sprintf("HTTP %d: %s", statusCode, truncate(string(body), maxErrorBodyLength)))
		}
		msg := firstString(envelope, "message", "errMsg", "error")
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", statusCode)
		}
		return APIErrorOutcome(statusCode, statusCode, msg)
	}

	if parseErr != nil {
		return SchemaMismatchOutcome(body, Violation{Field: "body", Rule: "json", Message: parseErr.Error()})
	}

	_, hasCode := envelope["code"]
	_, hasTimestamp := envelope["timestamp"]
	_, hasURL := envelope["url"]

	if hasTimestamp && hasURL && !hasCode {
		msg := firstString(envelope, "message", "error")
		if msg == "" {
			msg = "API returned error response"
		}
		if ts := firstString(envelope, "timestamp"); ts != "" {
			msg = fmt.Sprintf("%s (timestamp: %s)", msg, ts)
		}
		return APIErrorOutcome(statusCode, statusCode, msg)
	}

	if !hasCode {
		return SchemaMismatchOutcome(body, Violation{Field: "code", Rule: "envelope", Message: "unrecognized response format"})
	}

	code := parseCode(envelope["code"])
	if code != 0 {
		msg := firstString(envelope, "errMsg", "message", "error")
		if msg == "" {
			msg = "Unknown error"
		}
		return APIErrorOutcome(statusCode, code, msg)
	}

	data := envelope["data"]
	if violations := i.validateData(data, target); len(violations) > 0 {
		return SchemaMismatchOutcome(body, violations...)
	}

	return Success(data)
}

func (i *ResponseInterpreter) validateData(data jsoniter.RawMessage, target any) []Violation {
	if target == nil {
		return nil
	}

	if len(data) == 0 || string(data) == "null" {
		return []Violation{{Field: "data", Rule: "required", Message: "data field missing from successful response"}}
	}

	if err := json.Unmarshal(data, target); err != nil {
		return []Violation{{Field: "data", Rule: "decode", Message: err.Error()}}
	}

	if reflect.Indirect(reflect.ValueOf(target)).Kind() != reflect.Struct {
		return nil
	}

	err := i.validate.Struct(target)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []Violation{{Field: "data", Rule: "validate", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, Violation{
			Field:   dataField(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return violations
}

// dataField troca o nome do tipo raiz por "data": CampaignsData.list[0].id -> data.list[0].id
func dataField(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return "data" + namespace[idx:]
	}
	return "data"
}

// parseCode lê o campo code. Só um valor numericamente zero indica sucesso:
// nulo, fracionário ou texto não numérico vira unknownCode.
func parseCode(raw jsoniter.RawMessage) int {
	if len(raw) == 0 {
		return unknownCode
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return unknownCode
	}

	var s string
	switch c := v.(type) {
	case jsonNumber:
		s = c.String()
	case string:
		s = strings.TrimSpace(c)
	default:
		return unknownCode
	}

	if code, err := strconv.Atoi(s); err == nil {
		return code
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
		return 0
	}
	return unknownCode
}

// firstString devolve o primeiro campo não vazio entre keys, convertido para texto
func firstString(envelope map[string]jsoniter.RawMessage, keys ...string) string {
	for _, k := range keys {
		raw, ok := envelope[k]
		if !ok {
			continue
		}

		var v any
		if err := json.Unmarshal(raw, &v); err != nil || v == nil {
			continue
		}

		var s string
		switch val := v.(type) {
		case string:
			s = val
		case jsonNumber:
			s = val.String()
		default:
			s = string(raw)
		}

		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
