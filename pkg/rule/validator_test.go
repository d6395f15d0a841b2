package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yasameenmsa/talentvault/pkg/rule"
)

// uploadForm 用于测试 ValidateStruct.
type uploadForm struct {
	FileType string `rule:"required,oneof=cv document job-image"`
	Days     int    `rule:"gt=0"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := uploadForm{FileType: "cv", Days: 30}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：FileType 不在枚举内
	invalid1 := uploadForm{FileType: "archive", Days: 30}

	err = rule.ValidateStruct(invalid1)
	if err == nil {
		t.Error("Expected error for invalid struct (bad file type), got nil")
	}

	// 无效结构体：Days 非正数
	invalid2 := uploadForm{FileType: "document", Days: 0}

	err = rule.ValidateStruct(invalid2)
	if err == nil {
		t.Error("Expected error for invalid struct (days <= 0), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 email
	err := rule.ValidateVar("test@example.com", "required,email")
	if err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	// 无效 email
	err = rule.ValidateVar("invalid-email", "required,email")
	if err == nil {
		t.Error("Expected error for invalid email, got nil")
	}

	// 有效数字
	err = rule.ValidateVar(25, "gte=18")
	if err != nil {
		t.Errorf("Expected no error for valid number, got %v", err)
	}

	// 无效数字
	err = rule.ValidateVar(15, "gte=18")
	if err == nil {
		t.Error("Expected error for invalid number, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：检查字符串是否带扩展名
	err := rule.RegisterValidation("has_ext", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		for i := len(str) - 1; i >= 0; i-- {
			if str[i] == '.' {
				return i > 0 && i < len(str)-1
			}
		}

		return false
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	err = rule.ValidateVar("resume.pdf", "has_ext")
	if err != nil {
		t.Errorf("Expected no error for filename with extension, got %v", err)
	}

	err = rule.ValidateVar("resume", "has_ext")
	if err == nil {
		t.Error("Expected error for filename without extension, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("min_required", "required,min=3")

	err := rule.ValidateVar("abc", "min_required")
	if err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	err = rule.ValidateVar("ab", "min_required")
	if err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}
