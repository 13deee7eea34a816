package logsink

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidStack   = errors.New("invalid stack")
	ErrInvalidLevel   = errors.New("invalid level")
	ErrInvalidPackage = errors.New("invalid package")
)

// Stack определяет сторону системы, породившую событие
type Stack string

const (
	StackBackend  Stack = "backend"
	StackFrontend Stack = "frontend"
)

// Level уровень важности события
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// Package компонент, к которому относится событие
type Package string

const (
	PackageCache      Package = "cache"
	PackageController Package = "controller"
	PackageCronJob    Package = "cron_job"
	PackageDB         Package = "db"
	PackageDomain     Package = "domain"
	PackageHandler    Package = "handler"
	PackageRepository Package = "repository"
	PackageRoute      Package = "route"
	PackageService    Package = "service"

	PackageComponent Package = "component"
	PackageHook      Package = "hook"
	PackagePage      Package = "page"
	PackageState     Package = "state"
	PackageStyle     Package = "style"

	PackageAuth       Package = "auth"
	PackageConfig     Package = "config"
	PackageMiddleware Package = "middleware"
	PackageUtils      Package = "utils"
)

var levels = map[Level]struct{}{
	LevelDebug: {},
	LevelInfo:  {},
	LevelWarn:  {},
	LevelError: {},
	LevelFatal: {},
}

var sharedPackages = []Package{PackageAuth, PackageConfig, PackageMiddleware, PackageUtils}

var stackPackages = map[Stack]map[Package]struct{}{
	StackBackend: packageSet(
		PackageCache, PackageController, PackageCronJob, PackageDB, PackageDomain,
		PackageHandler, PackageRepository, PackageRoute, PackageService,
	),
	StackFrontend: packageSet(
		PackageComponent, PackageHook, PackagePage, PackageState, PackageStyle,
	),
}

func packageSet(pkgs ...Package) map[Package]struct{} {
	set := make(map[Package]struct{}, len(pkgs)+len(sharedPackages))
	for _, p := range append(pkgs, sharedPackages...) {
		set[p] = struct{}{}
	}
	return set
}

// Event структурированное событие для удаленного приемника логов
type Event struct {
	Stack     Stack     `json:"stack"`
	Level     Level     `json:"level"`
	Package   Package   `json:"package"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate проверяет, что стек, уровень и пакет допустимы и пакет принадлежит стеку
func (e Event) Validate() error {
	allowed, ok := stackPackages[e.Stack]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStack, e.Stack)
	}
	if _, ok := levels[e.Level]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, e.Level)
	}
	if _, ok := allowed[e.Package]; !ok {
		return fmt.Errorf("%w: %q for stack %s", ErrInvalidPackage, e.Package, e.Stack)
	}
	return nil
}

// IsValidPackage сообщает, допустим ли пакет для стека
func IsValidPackage(stack Stack, pkg Package) bool {
	_, ok := stackPackages[stack][pkg]
	return ok
}
