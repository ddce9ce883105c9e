package home

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

// Generator is the one call we make against an external language model:
// prompt in, free-form text out. No retry; the call is paid per request.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const commandPromptTemplate = `You are a smart home automation assistant. Parse this command and return ONLY a JSON object.

Rules:
1. Return ONLY valid JSON, no markdown, no extra text
2. Required: "device_name" and "action"
3. Optional: "value" (number)
4. Actions: turn_on, turn_off, set_temperature, set_brightness, set_speed

Command: "%s"

Valid JSON examples:
{"device_name": "Living Room Light", "action": "turn_on"}
{"device_name": "AC", "action": "set_temperature", "value": 22}

Return JSON now:`

var codeFencePattern = regexp.MustCompile("```json\\s*|```\\s*")

func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}

// extractJSONObject finds the first balanced brace-delimited object in the
// text, skipping braces inside JSON string literals. Anything unbalanced or
// brace-free yields ok=false; we never guess at a boundary.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

type InterpreterImpl struct {
	Generator Generator
}

// parseCommand turns free text into a ParsedCommand via the external model.
// The model's output is untrusted: any transport failure, missing payload,
// bad JSON or missing required field collapses to nil and the caller reports
// it as a command that could not be understood.
func (ii *InterpreterImpl) parseCommand(ctx context.Context, command string) *models.ParsedCommand {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryHomeInterpret),
	)

	if ii.Generator == nil {
		logger.Warn("No generator configured, cannot interpret command")
		return nil
	}

	prompt := fmt.Sprintf(commandPromptTemplate, command)

	raw, err := ii.Generator.Generate(ctx, prompt)
	if err != nil {
		logger.Warn("Language model call failed", zap.Error(err))
		return nil
	}

	cleaned := stripCodeFences(strings.TrimSpace(raw))

	jsonText, ok := extractJSONObject(cleaned)
	if !ok {
		logger.Warn("No JSON object found in model response", zap.String("response", cleaned))
		return nil
	}

	var parsed models.ParsedCommand
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		logger.Warn("Failed to decode model response", zap.String("json", jsonText), zap.Error(err))
		return nil
	}

	if parsed.DeviceName == "" || parsed.Action == "" {
		logger.Warn("Model response missing required fields", zap.String("json", jsonText))
		return nil
	}

	logger.Info("Parsed command", zap.String("command", command), zap.Reflect("parsed", parsed))
	return &parsed
}

func (ii *InterpreterImpl) ParseCommand(ctx context.Context, command string) *models.ParsedCommand {
	return ii.parseCommand(ctx, command)
}

func NewInterpreter(generator Generator) IInterpreter {
	return &InterpreterImpl{Generator: generator}
}
