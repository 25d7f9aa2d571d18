package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"
)

type seedAccount struct {
	username string
	password string
	role     entities.Role
}

var seedAccounts = []seedAccount{
	{username: "admin", password: "admin123", role: entities.RoleLeader},
	{username: "budgeter", password: "budgeter123", role: entities.RoleBudgeter},
	{username: "manager", password: "manager123", role: entities.RoleProjectManager},
}

var seedProjects = []struct {
	name  string
	start time.Time
}{
	{name: "跨江大桥建设项目", start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	{name: "高层写字楼建设项目", start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	{name: "高速公路扩建项目", start: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
	{name: "水利枢纽工程", start: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)},
	{name: "城市地铁建设项目", start: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
	{name: "现代工业园区建设", start: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
}

// seedBudgetProject is the office tower project, the second seeded project.
const seedBudgetProject = 1

var seedBudgetDetails = []entities.BudgetDetail{
	{ItemType: entities.ItemTypeMaterial, ItemName: "高强度水泥", Specification: "普通硅酸盐水泥 52.5级", Unit: "吨", Quantity: 350, UnitPrice: 520},
	{ItemType: entities.ItemTypeMaterial, ItemName: "高强钢筋", Specification: "HRB500E φ16-32mm", Unit: "吨", Quantity: 120, UnitPrice: 5800},
	{ItemType: entities.ItemTypeMaterial, ItemName: "高标号混凝土", Specification: "C40商品混凝土", Unit: "立方米", Quantity: 500, UnitPrice: 580},
	{ItemType: entities.ItemTypeMaterial, ItemName: "加气混凝土砌块", Specification: "B06级 600×200×100mm", Unit: "立方米", Quantity: 200, UnitPrice: 280},
	{ItemType: entities.ItemTypeMaterial, ItemName: "钢化玻璃幕墙", Specification: "12mm+12A+6mm中空玻璃", Unit: "平方米", Quantity: 800, UnitPrice: 450},
	{ItemType: entities.ItemTypeMaterial, ItemName: "铝合金型材", Specification: "6063-T5断桥铝型材", Unit: "吨", Quantity: 15, UnitPrice: 18000},
	{ItemType: entities.ItemTypeMaterial, ItemName: "防水材料", Specification: "SBS改性沥青防水卷材", Unit: "平方米", Quantity: 1200, UnitPrice: 35},
	{ItemType: entities.ItemTypeMaterial, ItemName: "保温材料", Specification: "XPS挤塑聚苯板 50mm", Unit: "平方米", Quantity: 1500, UnitPrice: 28},
	{ItemType: entities.ItemTypeLabor, ItemName: "高级建筑工程师", Specification: "一级建造师", Unit: "人月", Quantity: 8, UnitPrice: 15000},
	{ItemType: entities.ItemTypeLabor, ItemName: "结构工程师", Specification: "高级工程师", Unit: "人月", Quantity: 6, UnitPrice: 13000},
	{ItemType: entities.ItemTypeLabor, ItemName: "技术工人", Specification: "高级技工", Unit: "人月", Quantity: 25, UnitPrice: 9000},
	{ItemType: entities.ItemTypeLabor, ItemName: "普通建筑工人", Specification: "中级技工", Unit: "人月", Quantity: 40, UnitPrice: 6500},
	{ItemType: entities.ItemTypeLabor, ItemName: "辅助工人", Specification: "普通劳务", Unit: "人月", Quantity: 20, UnitPrice: 4500},
	{ItemType: entities.ItemTypeEquipment, ItemName: "大型塔吊", Specification: "QTZ125塔式起重机", Unit: "台月", Quantity: 4, UnitPrice: 22000},
	{ItemType: entities.ItemTypeEquipment, ItemName: "高压混凝土泵车", Specification: "52米泵车", Unit: "台月", Quantity: 3, UnitPrice: 25000},
	{ItemType: entities.ItemTypeEquipment, ItemName: "施工升降机", Specification: "SC200/200双笼升降机", Unit: "台月", Quantity: 2, UnitPrice: 18000},
	{ItemType: entities.ItemTypeOther, ItemName: "高空安全防护", Specification: "安全网、防护栏、安全带等", Unit: "项", Quantity: 1, UnitPrice: 45000},
	{ItemType: entities.ItemTypeOther, ItemName: "临时设施建设", Specification: "办公区、生活区、仓储区", Unit: "项", Quantity: 1, UnitPrice: 65000},
}

// ISeedUseCase provisions demo data.
type ISeedUseCase interface {
	Seed(ctx context.Context) (bool, error)
}

type SeedUseCase struct {
	identities interfaces.IIdentityRepository
	projects   interfaces.IProjectRepository
	budgets    interfaces.IBudgetRepository
	hasher     interfaces.IPasswordHasher
}

var _ ISeedUseCase = (*SeedUseCase)(nil)

func NewSeedUseCase(
	identities interfaces.IIdentityRepository,
	projects interfaces.IProjectRepository,
	budgets interfaces.IBudgetRepository,
	hasher interfaces.IPasswordHasher,
) *SeedUseCase {
	return &SeedUseCase{identities: identities, projects: projects, budgets: budgets, hasher: hasher}
}

// Seed provisions the demo accounts, projects and one approved budget. It does
// nothing and returns false when any identity already exists.
func (u *SeedUseCase) Seed(ctx context.Context) (bool, error) {
	count, err := u.identities.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Printf("[seed][usecase] skipped identities=%d", count)
		return false, nil
	}

	now := time.Now().UTC()
	accounts := make(map[entities.Role]entities.Identity, len(seedAccounts))
	for _, a := range seedAccounts {
		hash, err := u.hasher.Hash(a.password)
		if err != nil {
			return false, fmt.Errorf("hash %s: %w", a.username, err)
		}
		created, err := u.identities.Create(ctx, entities.Identity{
			Username:     a.username,
			PasswordHash: hash,
			Role:         a.role,
			CreatedAt:    now,
		})
		if err != nil {
			return false, fmt.Errorf("create identity %s: %w", a.username, err)
		}
		accounts[a.role] = created
	}

	manager := accounts[entities.RoleProjectManager]
	projects := make([]entities.Project, 0, len(seedProjects))
	for _, sp := range seedProjects {
		p, err := u.projects.Create(ctx, entities.Project{
			Name:        sp.name,
			StartDate:   sp.start,
			ManagerID:   manager.ID,
			ManagerName: manager.Username,
			CreatedAt:   now,
		})
		if err != nil {
			return false, fmt.Errorf("create project %s: %w", sp.name, err)
		}
		projects = append(projects, p)
	}

	creator := accounts[entities.RoleBudgeter]
	project := projects[seedBudgetProject]
	b := entities.Budget{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		CreatorID:   creator.ID,
		CreatorName: creator.Username,
		CreatedAt:   now,
		Status:      entities.BudgetStatusPending,
		Details:     append([]entities.BudgetDetail(nil), seedBudgetDetails...),
	}
	if err := b.PriceDetails(); err != nil {
		return false, fmt.Errorf("price seed budget: %w", err)
	}
	b.TransitionTo(entities.BudgetStatusApproved, accounts[entities.RoleLeader], now)

	created, err := u.budgets.Create(ctx, b)
	if err != nil {
		return false, fmt.Errorf("create seed budget: %w", err)
	}

	log.Printf("[seed][usecase] seeded identities=%d projects=%d budget_id=%d total=%.2f", len(accounts), len(projects), created.ID, created.TotalAmount)
	return true, nil
}
