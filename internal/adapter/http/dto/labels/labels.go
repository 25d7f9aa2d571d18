// Package labels translates domain enums to the localized vocabulary used on
// the wire and back.
package labels

import (
	"strings"

	"budget_tracker/internal/domain/entities"
)

var roleLabels = map[entities.Role]string{
	entities.RoleLeader:         "领导",
	entities.RoleProjectManager: "项目经理",
	entities.RoleBudgeter:       "预算员",
}

var statusLabels = map[entities.BudgetStatus]string{
	entities.BudgetStatusDraft:    "草稿",
	entities.BudgetStatusPending:  "待审批",
	entities.BudgetStatusApproved: "已审批",
	entities.BudgetStatusRejected: "已驳回",
}

var itemTypeLabels = map[entities.ItemType]string{
	entities.ItemTypeMaterial:  "材料",
	entities.ItemTypeLabor:     "人工",
	entities.ItemTypeEquipment: "设备",
	entities.ItemTypeOther:     "其他",
}

// Role returns the label for r, or r itself when it has none.
func Role(r entities.Role) string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

func Status(s entities.BudgetStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func ItemType(t entities.ItemType) string {
	if l, ok := itemTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// ParseStatus accepts a label or an English name in any case ("已审批",
// "Approved", "approved"). Unknown input is returned unchanged so the caller's
// validation rejects it.
func ParseStatus(v string) entities.BudgetStatus {
	return parse(v, statusLabels)
}

// ParseItemType works like ParseStatus. Empty input stays empty.
func ParseItemType(v string) entities.ItemType {
	return parse(v, itemTypeLabels)
}

func parse[T ~string](v string, table map[T]string) T {
	v = strings.TrimSpace(v)
	if v == "" {
		return T("")
	}
	folded := fold(v)
	for value, label := range table {
		if v == label || folded == fold(string(value)) {
			return value
		}
	}
	return T(v)
}

// fold lowercases and drops separators so "ProjectManager", "project manager"
// and "project_manager" compare equal.
func fold(v string) string {
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(strings.ToLower(v))
}
