package repository

import (
	"strings"
	"testing"
)

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres operator want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite operator want LIKE got %s", got)
	}
}

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", []string{"shoes.name", " ", "shoes.brand"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if condition != "shoes.name ILIKE ? OR shoes.brand ILIKE ?" {
		t.Fatalf("unexpected condition: %s", condition)
	}
}

func TestBuildLikeConditionSQLiteDefault(t *testing.T) {
	condition, argCount := buildLikeCondition(nil, []string{"name"})
	if argCount != 1 || !strings.Contains(condition, "name LIKE ?") {
		t.Fatalf("unexpected sqlite condition %s (%d)", condition, argCount)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs(likePattern(" nike "), 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%nike%" {
			t.Fatalf("args[%d] want %%nike%% got %v", idx, arg)
		}
	}
}
