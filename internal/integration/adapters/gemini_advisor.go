package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/api/option"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiAdvisor implements adapter.Advisor using Google Gemini.
type GeminiAdvisor struct {
	apiKey    string
	modelName string
}

// NewGeminiAdvisor creates a new Gemini advisor instance.
func NewGeminiAdvisor(apiKey, modelName string) *GeminiAdvisor {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiAdvisor{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini advisor is properly configured.
func (s *GeminiAdvisor) IsAvailable() bool {
	return s.apiKey != ""
}

// Classify asks for a category and jar constrained to the fixed enums.
func (s *GeminiAdvisor) Classify(ctx context.Context, expenseName string) (*adapter.ExpenseSuggestion, error) {
	text, err := s.generate(ctx, buildClassifyPrompt(expenseName), func(model *genai.GenerativeModel) {
		model.SetTemperature(0.2)
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = classifySchema()
	})
	if err != nil {
		return nil, err
	}
	return parseClassification(text)
}

// SuggestIcon asks for a single emoji.
func (s *GeminiAdvisor) SuggestIcon(ctx context.Context, goalName string) (string, error) {
	text, err := s.generate(ctx, buildIconPrompt(goalName), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GetAdvice asks for short encouraging advice in Vietnamese.
func (s *GeminiAdvisor) GetAdvice(ctx context.Context, request adapter.AdviceRequest) (string, error) {
	text, err := s.generate(ctx, buildAdvicePrompt(request), func(model *genai.GenerativeModel) {
		model.SetTemperature(0.7)
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *GeminiAdvisor) generate(ctx context.Context, prompt string, configure func(*genai.GenerativeModel)) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAdvisorNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	if configure != nil {
		configure(model)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return responseText(resp)
}

// responseText returns the concatenated text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in response")
	}
	return sb.String(), nil
}

func classifySchema() *genai.Schema {
	categories := make([]string, len(entity.Categories))
	for i, c := range entity.Categories {
		categories[i] = string(c)
	}
	jars := make([]string, len(entity.JarCatalog))
	for i, cfg := range entity.JarCatalog {
		jars[i] = string(cfg.ID)
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {Type: genai.TypeString, Enum: categories},
			"jar":      {Type: genai.TypeString, Enum: jars},
		},
		Required: []string{"category", "jar"},
	}
}

func buildClassifyPrompt(expenseName string) string {
	categories := make([]string, len(entity.Categories))
	for i, c := range entity.Categories {
		categories[i] = string(c)
	}
	jars := make([]string, len(entity.JarCatalog))
	for i, cfg := range entity.JarCatalog {
		jars[i] = fmt.Sprintf("%s (%s: %s)", cfg.ID, cfg.FullName, cfg.Description)
	}

	return fmt.Sprintf(`Phân tích chi tiêu sau: "%s".
1. Chọn một danh mục phù hợp nhất từ: %s.
2. Dựa vào mục đích của các lọ sau, chọn ra 1 lọ phù hợp nhất để chi: %s.`,
		expenseName, strings.Join(categories, ", "), strings.Join(jars, "; "))
}

type geminiClassification struct {
	Category string `json:"category"`
	Jar      string `json:"jar"`
}

// parseClassification decodes the JSON answer. Values outside the enums are
// returned as-is; the caller coerces them.
func parseClassification(text string) (*adapter.ExpenseSuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiClassification
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}
	return &adapter.ExpenseSuggestion{
		Category: entity.Category(raw.Category),
		Jar:      entity.JarID(raw.Jar),
	}, nil
}

func buildIconPrompt(goalName string) string {
	return fmt.Sprintf(`Chọn một emoji duy nhất phù hợp nhất cho mục tiêu tiết kiệm sau: "%s". Chỉ trả về emoji đó, không thêm bất kỳ văn bản nào khác.`, goalName)
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

// formatVND renders an amount with Vietnamese digit grouping, e.g. 1.000.000đ.
func formatVND(amount decimal.Decimal) string {
	return vndPrinter.Sprintf("%d", amount.Round(0).IntPart()) + "đ"
}

func buildAdvicePrompt(request adapter.AdviceRequest) string {
	var jarLines []string
	for _, jar := range request.Jars {
		name := string(jar.ID)
		if cfg, ok := entity.FindJarConfig(jar.ID); ok {
			name = cfg.FullName
		}
		jarLines = append(jarLines, fmt.Sprintf("- Lọ %s (%s): %s còn lại.", name, jar.ID, formatVND(jar.Balance)))
	}

	expenses := "Chưa có chi tiêu nào."
	if len(request.Expenses) > 0 {
		lines := make([]string, len(request.Expenses))
		for i, e := range request.Expenses {
			lines[i] = fmt.Sprintf("- %s (%s): %s", e.Name, e.Jar, formatVND(e.Amount))
		}
		expenses = strings.Join(lines, "\n")
	}

	savings := "Bạn ấy chưa có mục tiêu tiết kiệm nào."
	if len(request.Goals) > 0 {
		lines := make([]string, len(request.Goals))
		for i, g := range request.Goals {
			percent := decimal.Zero
			if g.TargetAmount.IsPositive() {
				percent = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0)
			}
			lines[i] = fmt.Sprintf("- Mục tiêu \"%s\": Đã đạt %s / %s (%s%%).",
				g.Name, formatVND(g.CurrentAmount), formatVND(g.TargetAmount), percent.String())
		}
		savings = "Tình hình các mục tiêu tiết kiệm:\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Bạn là một chuyên gia tài chính thân thiện và đáng yêu, chuyên đưa ra lời khuyên cho học sinh trung học ở Việt Nam theo phương pháp 6 chiếc lọ.

Tình hình tài chính của bạn học sinh hiện tại:
%s

Các chi tiêu gần nhất:
%s

%s

Dựa vào tất cả các thông tin trên, hãy đưa ra một vài lời khuyên ngắn gọn, hữu ích và khích lệ.
- Hãy nhận xét về việc phân bổ chi tiêu vào các lọ. Lọ nào đang làm tốt, lọ nào cần chú ý?
- Nhận xét về tiến độ tiết kiệm cho các mục tiêu. Đưa ra lời động viên để bạn ấy tiếp tục.
- Sử dụng ngôn ngữ gần gũi, dễ thương, tích cực, nói bằng tiếng Việt.
- Bắt đầu bằng một câu chào vui vẻ và trình bày như đang trò chuyện trực tiếp.`,
		strings.Join(jarLines, "\n"), expenses, savings)
}
