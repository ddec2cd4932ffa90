package photon

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/google/uuid"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the resources and the staged systems that keep lights in sync.
// It is single threaded: systems run one after another on the calling
// goroutine.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	frame     uint64

	// Command Buffering
	pendingLights   []*PhysicalLight
	pendingRemovals []uuid.UUID
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.initStage(stage)
	}
	app.addResources(NewLightRegistry())
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
		app.modules = append(app.modules, module)
	}
	app.FlushCommands()
	return app
}

// Frame is the number of completed ticks.
func (app *App) Frame() uint64 {
	return app.frame
}

// Tick runs every stage once. Commands issued by a stage are applied before
// the next stage starts.
func (app *App) Tick() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
		app.FlushCommands()
	}
	app.frame++
}

// Run ticks until stop returns true. stop is checked before every frame.
func (app *App) Run(stop func(app *App) bool) {
	for !stop(app) {
		app.Tick()
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer resource", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource looks up a resource by its pointed-to type.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	typed, ok := r.(*T)
	return typed, ok
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfLogger   = reflect.TypeOf((*Logger)(nil)).Elem()
)

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType == typeOfLogger {
			args[i] = reflect.ValueOf(app.Logger())
			continue
		}
		if argType.Kind() == reflect.Pointer {
			underlyingType := argType.Elem()
			if underlyingType == typeOfCommands {
				args[i] = reflect.ValueOf(&Commands{app: app})
				continue
			}
			if resource, ok := app.resources[underlyingType]; ok {
				args[i] = reflect.ValueOf(resource)
				continue
			}
		}

		msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
			runtime.FuncForPC(systemValue.Pointer()).Name(),
			fmt.Sprint(systemType),
			fmt.Sprint(argType),
		)
		panic(msg)
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingLights) == 0 && len(app.pendingRemovals) == 0 {
		return
	}
	registry, _ := Resource[LightRegistry](app)
	overlaps, _ := Resource[OverlapRegistry](app)
	logger := app.Logger()

	// Removals first so a light queued for both ends up registered.
	for _, id := range app.pendingRemovals {
		if registry.remove(id) {
			logger.Debugf("flush: removed light %s", id)
		}
		if overlaps != nil {
			overlaps.Forget(id)
		}
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, light := range app.pendingLights {
		registry.add(light)
		logger.Debugf("flush: added %s light %s", light.Shape(), light.ID())
	}
	app.pendingLights = app.pendingLights[:0]
}
