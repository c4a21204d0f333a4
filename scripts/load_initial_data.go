package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/config"
	"dealspace-backend/internal/database"
	"dealspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name   string      `yaml:"name"`
	Plan   string      `yaml:"plan"`
	Stages []StageData `yaml:"stages,omitempty"`
	Users  []UserData  `yaml:"users"`
}

type StageData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	IsDefault   bool   `yaml:"is_default"`
}

type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Phone    string `yaml:"phone,omitempty"`
}

type GroupData struct {
	TenantName         string   `yaml:"tenant_name"`
	Name               string   `yaml:"name"`
	Type               string   `yaml:"type"`
	Distribution       string   `yaml:"distribution"`
	ClaimWindowMinutes int      `yaml:"claim_window_minutes"`
	IsPrimary          bool     `yaml:"is_primary"`
	Members            []string `yaml:"members"` // user emails in rotation order
}

type LeadFlowRuleData struct {
	TenantName string                 `yaml:"tenant_name"`
	Name       string                 `yaml:"name"`
	Source     string                 `yaml:"source"`
	Priority   int                    `yaml:"priority"`
	Inactive   bool                   `yaml:"inactive,omitempty"`
	MatchType  string                 `yaml:"match_type"`
	Conditions []models.RuleCondition `yaml:"conditions"`
	AssignType string                 `yaml:"assign_type"`
	AssignTo   string                 `yaml:"assign_to"` // user email or group name
	Stage      string                 `yaml:"stage,omitempty"`
	Tags       []string               `yaml:"tags,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

type LeadFlowRulesFile struct {
	Rules []LeadFlowRuleData `yaml:"lead_flow_rules"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect with retry for dockerized Postgres startup
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var tenantsFile TenantsFile
	if err := loadYAMLFiles(dataDir, "tenants", func(data []byte) error {
		var file TenantsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		tenantsFile.Tenants = append(tenantsFile.Tenants, file.Tenants...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	var groupsFile GroupsFile
	if err := loadYAMLFiles(dataDir, "groups", func(data []byte) error {
		var file GroupsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		groupsFile.Groups = append(groupsFile.Groups, file.Groups...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	var rulesFile LeadFlowRulesFile
	if err := loadYAMLFiles(dataDir, "lead_flow_rules", func(data []byte) error {
		var file LeadFlowRulesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		rulesFile.Rules = append(rulesFile.Rules, file.Rules...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load lead flow rules: %w", err)
	}

	// Tenants first, their users and stages come along
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated, userCreated := 0, 0
	for _, tenantData := range tenantsFile.Tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}

		for _, userData := range tenantData.Users {
			_, created, err := createUser(db, tenant, userData)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
			}
			if created {
				userCreated++
			}
		}
	}
	log.Printf("Tenants: %d created, %d total", tenantCreated, len(tenantsFile.Tenants))
	log.Printf("Users: %d created", userCreated)

	groupCreated := 0
	for _, groupData := range groupsFile.Groups {
		_, created, err := createGroup(db, groupData, tenantMap)
		if err != nil {
			log.Printf("Warning: failed to create group %s: %v", groupData.Name, err)
			continue
		}
		if created {
			groupCreated++
		}
	}
	log.Printf("Groups: %d created, %d total", groupCreated, len(groupsFile.Groups))

	ruleCreated := 0
	for _, ruleData := range rulesFile.Rules {
		_, created, err := createLeadFlowRule(db, ruleData, tenantMap)
		if err != nil {
			log.Printf("Warning: failed to create lead flow rule %s: %v", ruleData.Name, err)
			continue
		}
		if created {
			ruleCreated++
		}
	}
	log.Printf("Lead flow rules: %d created, %d total", ruleCreated, len(rulesFile.Rules))

	return nil
}

// loadYAMLFiles calls decode for every .yaml file under dataDir whose path contains kind
func loadYAMLFiles(dataDir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	err := db.Where("name = ?", tenantData.Name).First(&tenant).Error
	if err == nil {
		return &tenant, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query tenant: %w", err)
	}

	plan := models.Plan(tenantData.Plan)
	if !plan.IsValid() {
		plan = models.PlanFree
	}
	tenant = models.Tenant{Name: tenantData.Name, Plan: plan}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}
		stages := stagesFor(tenant.ID, tenantData.Stages)
		return tx.Create(&stages).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create tenant: %w", err)
	}
	return &tenant, true, nil
}

// stagesFor builds the listed stages, or the default pipeline when none are listed
func stagesFor(tenantID uuid.UUID, data []StageData) []models.Stage {
	if len(data) == 0 {
		for i, name := range models.DefaultStageNames {
			data = append(data, StageData{Name: name, IsDefault: i == 0})
		}
	}

	hasDefault := false
	stages := make([]models.Stage, len(data))
	for i, s := range data {
		isDefault := s.IsDefault && !hasDefault
		hasDefault = hasDefault || isDefault
		stages[i] = models.Stage{
			TenantID:    tenantID,
			Name:        s.Name,
			Description: s.Description,
			Position:    i + 1,
			IsDefault:   isDefault,
		}
	}
	if !hasDefault {
		stages[0].IsDefault = true
	}
	return stages
}

func createUser(db *gorm.DB, tenant *models.Tenant, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(userData.Email))

	var user models.User
	err := db.Where("LOWER(email) = ?", email).First(&user).Error
	if err == nil {
		if user.TenantID != tenant.ID {
			return nil, false, fmt.Errorf("email already belongs to another tenant")
		}
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.UserRole(userData.Role)
	if !role.IsValid() {
		role = models.UserRoleAgent
	}

	hash, err := auth.HashPassword(userData.Password)
	if err != nil {
		return nil, false, err
	}

	user = models.User{
		TenantID:     tenant.ID,
		Name:         userData.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        userData.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createGroup(db *gorm.DB, groupData GroupData, tenantMap map[string]*models.Tenant) (*models.Group, bool, error) {
	tenant, ok := tenantMap[groupData.TenantName]
	if !ok {
		return nil, false, fmt.Errorf("tenant %s not found", groupData.TenantName)
	}

	var group models.Group
	err := db.Where("tenant_id = ? AND name = ?", tenant.ID, groupData.Name).First(&group).Error
	if err == nil {
		return &group, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query group: %w", err)
	}

	members := make([]models.GroupMember, 0, len(groupData.Members))
	for i, email := range groupData.Members {
		userID, err := userIDByEmail(db, tenant.ID, email)
		if err != nil {
			return nil, false, err
		}
		members = append(members, models.GroupMember{UserID: userID, Position: i})
	}

	group = models.Group{
		TenantModel:        models.TenantModel{TenantID: tenant.ID},
		Name:               groupData.Name,
		Type:               models.GroupType(groupData.Type),
		Distribution:       models.DistributionType(groupData.Distribution),
		ClaimWindowMinutes: groupData.ClaimWindowMinutes,
		IsPrimary:          groupData.IsPrimary,
		LastAssignedIndex:  -1,
		Members:            members,
	}
	if group.Type == "" {
		group.Type = models.GroupTypeAgent
	}
	if !group.Distribution.IsValid() {
		group.Distribution = models.DistributionRoundRobin
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if group.IsPrimary {
			if err := tx.Model(&models.Group{}).
				Where("tenant_id = ?", tenant.ID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&group).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create group: %w", err)
	}
	return &group, true, nil
}

func createLeadFlowRule(db *gorm.DB, ruleData LeadFlowRuleData, tenantMap map[string]*models.Tenant) (*models.LeadFlowRule, bool, error) {
	tenant, ok := tenantMap[ruleData.TenantName]
	if !ok {
		return nil, false, fmt.Errorf("tenant %s not found", ruleData.TenantName)
	}

	var rule models.LeadFlowRule
	err := db.Where("tenant_id = ? AND name = ?", tenant.ID, ruleData.Name).First(&rule).Error
	if err == nil {
		return &rule, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query lead flow rule: %w", err)
	}

	for _, cond := range ruleData.Conditions {
		if !cond.Field.IsValid() || !cond.Operator.IsValid() {
			return nil, false, fmt.Errorf("invalid condition %s %s", cond.Field, cond.Operator)
		}
	}

	assignType := models.AssignType(ruleData.AssignType)
	if !assignType.IsValid() {
		return nil, false, fmt.Errorf("invalid assign_type %q", ruleData.AssignType)
	}

	var assignID uuid.UUID
	switch assignType {
	case models.AssignToUser:
		assignID, err = userIDByEmail(db, tenant.ID, ruleData.AssignTo)
	case models.AssignToGroup:
		assignID, err = idByName(db, &models.Group{}, tenant.ID, ruleData.AssignTo)
	case models.AssignToPond:
		assignID, err = idByName(db, &models.Pond{}, tenant.ID, ruleData.AssignTo)
	}
	if err != nil {
		return nil, false, err
	}

	rule = models.LeadFlowRule{
		TenantModel: models.TenantModel{TenantID: tenant.ID},
		Name:        ruleData.Name,
		Source:      ruleData.Source,
		Priority:    ruleData.Priority,
		IsActive:    true,
		MatchType:   models.MatchType(ruleData.MatchType),
		Conditions:  models.RuleConditions(ruleData.Conditions),
		AssignType:  assignType,
		AssignID:    &assignID,
		Tags:        models.StringList(ruleData.Tags),
	}
	if rule.MatchType != models.MatchAny {
		rule.MatchType = models.MatchAll
	}
	if ruleData.Stage != "" {
		stageID, err := idByName(db, &models.Stage{}, tenant.ID, ruleData.Stage)
		if err != nil {
			return nil, false, err
		}
		rule.StageID = &stageID
	}

	if err := db.Create(&rule).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create lead flow rule: %w", err)
	}
	// is_active has a schema default of true
	if ruleData.Inactive {
		if err := db.Model(&rule).Update("is_active", false).Error; err != nil {
			return nil, false, fmt.Errorf("failed to deactivate lead flow rule: %w", err)
		}
	}
	return &rule, true, nil
}

func userIDByEmail(db *gorm.DB, tenantID uuid.UUID, email string) (uuid.UUID, error) {
	var user models.User
	err := db.Select("id").
		Where("tenant_id = ? AND LOWER(email) = ?", tenantID, strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("user %s: %w", email, err)
	}
	return user.ID, nil
}

func idByName(db *gorm.DB, model interface{}, tenantID uuid.UUID, name string) (uuid.UUID, error) {
	var row struct{ ID uuid.UUID }
	err := db.Model(model).Select("id").
		Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, name).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", name, err)
	}
	return row.ID, nil
}
