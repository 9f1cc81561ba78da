package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"

	"github.com/six-jars/backend/internal/application/adapter"
	"github.com/six-jars/backend/internal/domain/entity"
	domainerror "github.com/six-jars/backend/internal/domain/error"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    adapter.ExpenseSuggestion
		wantErr bool
	}{
		{
			name: "plain json",
			text: `{"category":"Ăn uống","jar":"NEC"}`,
			want: adapter.ExpenseSuggestion{Category: entity.CategoryFood, Jar: entity.JarNecessities},
		},
		{
			name: "fenced json",
			text: "```json\n{\"category\":\"Học tập\",\"jar\":\"EDU\"}\n```",
			want: adapter.ExpenseSuggestion{Category: entity.CategoryStudy, Jar: entity.JarEducation},
		},
		{
			name: "out of enum values pass through",
			text: `{"category":"Khác lạ","jar":"XYZ"}`,
			want: adapter.ExpenseSuggestion{Category: "Khác lạ", Jar: "XYZ"},
		},
		{
			name:    "not json",
			text:    "Ăn uống, NEC",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClassification(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseClassification() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClassification() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseClassification() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("🚲"), genai.Text("\n")}}},
		},
	}
	got, err := responseText(resp)
	if err != nil || got != "🚲\n" {
		t.Errorf("responseText() = %q, %v", got, err)
	}

	if _, err := responseText(&genai.GenerateContentResponse{}); err == nil {
		t.Errorf("responseText(empty) error = nil")
	}
}

func TestBuildClassifyPrompt(t *testing.T) {
	prompt := buildClassifyPrompt("trà sữa")

	for _, want := range []string{`"trà sữa"`, "Ăn uống", "Khác", "NEC (Chi tiêu cần thiết:", "GIVE (Cho đi:"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestClassifySchema(t *testing.T) {
	schema := classifySchema()
	if len(schema.Properties["category"].Enum) != len(entity.Categories) {
		t.Errorf("category enum = %v", schema.Properties["category"].Enum)
	}
	if len(schema.Properties["jar"].Enum) != 6 {
		t.Errorf("jar enum = %v", schema.Properties["jar"].Enum)
	}
}

func TestBuildAdvicePrompt(t *testing.T) {
	t.Run("with goals and expenses", func(t *testing.T) {
		prompt := buildAdvicePrompt(adapter.AdviceRequest{
			Jars: []entity.Jar{{ID: entity.JarNecessities, Balance: decimal.NewFromInt(550000)}},
			Expenses: []entity.Expense{
				{Name: "Phở", Amount: decimal.NewFromInt(45000), Jar: entity.JarNecessities},
			},
			Goals: []entity.SavingsGoal{
				{Name: "Xe đạp", TargetAmount: decimal.NewFromInt(200000), CurrentAmount: decimal.NewFromInt(50000)},
			},
		})

		for _, want := range []string{
			"- Lọ Chi tiêu cần thiết (NEC):",
			"- Phở (NEC):",
			`- Mục tiêu "Xe đạp":`,
			"(25%).",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q\n%s", want, prompt)
			}
		}
	})

	t.Run("empty state", func(t *testing.T) {
		prompt := buildAdvicePrompt(adapter.AdviceRequest{})
		for _, want := range []string{"Chưa có chi tiêu nào.", "Bạn ấy chưa có mục tiêu tiết kiệm nào."} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})
}

func TestGeminiAdvisor_NotConfigured(t *testing.T) {
	advisor := NewGeminiAdvisor("", "")
	if advisor.IsAvailable() {
		t.Fatalf("IsAvailable() = true without an api key")
	}
	if _, err := advisor.Classify(context.Background(), "phở"); !errors.Is(err, domainerror.ErrAdvisorNotConfigured) {
		t.Errorf("Classify() error = %v, want ErrAdvisorNotConfigured", err)
	}
	if advisor.modelName != DefaultGeminiModel {
		t.Errorf("modelName = %q, want %q", advisor.modelName, DefaultGeminiModel)
	}
}
