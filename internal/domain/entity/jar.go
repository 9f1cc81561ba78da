// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// JarID identifies one of the six budget jars.
type JarID string

const (
	JarNecessities      JarID = "NEC"
	JarLongTermSavings  JarID = "LTSS"
	JarEducation        JarID = "EDU"
	JarPlay             JarID = "PLAY"
	JarFinancialFreedom JarID = "FFA"
	JarGive             JarID = "GIVE"
)

// SavingsJar is the jar every savings goal is funded from.
const SavingsJar = JarLongTermSavings

// JarConfig is the fixed, read-only definition of a jar.
type JarConfig struct {
	ID          JarID
	FullName    string
	Percentage  decimal.Decimal
	Icon        string
	Description string
}

// JarCatalog lists the six jars in display order. Percentages must sum to 1.
var JarCatalog = []JarConfig{
	{
		ID:          JarNecessities,
		FullName:    "Chi tiêu cần thiết",
		Percentage:  decimal.RequireFromString("0.55"),
		Icon:        "🍚",
		Description: "Nhu cầu thiết yếu hàng ngày như ăn uống, đi lại...",
	},
	{
		ID:          JarLongTermSavings,
		FullName:    "Tiết kiệm dài hạn",
		Percentage:  decimal.RequireFromString("0.10"),
		Icon:        "🎯",
		Description: "Mua sắm món đồ lớn như điện thoại, xe đạp...",
	},
	{
		ID:          JarEducation,
		FullName:    "Giáo dục",
		Percentage:  decimal.RequireFromString("0.10"),
		Icon:        "📚",
		Description: "Đầu tư cho bản thân: sách vở, khóa học...",
	},
	{
		ID:          JarPlay,
		FullName:    "Hưởng thụ",
		Percentage:  decimal.RequireFromString("0.10"),
		Icon:        "🎮",
		Description: "Giải trí, xem phim, trà sữa với bạn bè...",
	},
	{
		ID:          JarFinancialFreedom,
		FullName:    "Tự do tài chính",
		Percentage:  decimal.RequireFromString("0.10"),
		Icon:        "💰",
		Description: "Xây dựng quỹ tự do, không bao giờ tiêu đến.",
	},
	{
		ID:          JarGive,
		FullName:    "Cho đi",
		Percentage:  decimal.RequireFromString("0.05"),
		Icon:        "🎁",
		Description: "Giúp đỡ người khác, làm từ thiện, quà tặng...",
	},
}

// Jar is a budget bucket and its current balance.
type Jar struct {
	ID      JarID
	Balance decimal.Decimal
}

// JarIDs returns the jar identifiers in catalog order.
func JarIDs() []JarID {
	ids := make([]JarID, len(JarCatalog))
	for i, cfg := range JarCatalog {
		ids[i] = cfg.ID
	}
	return ids
}

// FindJarConfig returns the catalog entry for the given id.
func FindJarConfig(id JarID) (JarConfig, bool) {
	for _, cfg := range JarCatalog {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return JarConfig{}, false
}

// IsValidJarID reports whether id names one of the six jars.
func IsValidJarID(id JarID) bool {
	_, ok := FindJarConfig(id)
	return ok
}
