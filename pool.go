package d3d9to11

import (
	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

// poolTraits is the native allocation profile a memory pool translates to.
type poolTraits struct {
	usage backend.Usage
	cpu   backend.CPUAccess
	bind  backend.Bind
}

// traitsForPool resolves a memory pool to its native allocation profile.
// The requested pipeline bindings are honored only for the default pool;
// managed resources are always shader-bindable and system-memory resources
// never bind to the pipeline. Unrecognized pools are logged and treated as
// the default pool.
func traitsForPool(pool d3d9types.Pool, requested backend.Bind) poolTraits {
	switch pool {
	case d3d9types.PoolDefault:
		return poolTraits{usage: backend.UsageDefault, bind: requested}
	case d3d9types.PoolManaged:
		return poolTraits{
			usage: backend.UsageDynamic,
			cpu:   backend.CPUAccessWrite,
			bind:  backend.BindShaderResource,
		}
	case d3d9types.PoolSystemMem:
		return poolTraits{
			usage: backend.UsageStaging,
			cpu:   backend.CPUAccessRead | backend.CPUAccessWrite,
		}
	default:
		Logger().Error("unsupported memory pool", "pool", pool)
		return poolTraits{usage: backend.UsageDefault, bind: requested}
	}
}

// mapModeForLock translates lock flags, in the context of the resource's
// pool, to a native map mode. Locking a resource whose pool grants no CPU
// access is an invalid call.
func mapModeForLock(pool d3d9types.Pool, flags d3d9types.Lock) (backend.MapMode, backend.MapFlags, error) {
	var mf backend.MapFlags
	if flags.Contains(d3d9types.LockDoNotWait) {
		mf |= backend.MapDoNotWait
	}

	if flags.Contains(d3d9types.LockReadOnly) {
		return backend.MapRead, mf, nil
	}

	var mode backend.MapMode
	switch pool {
	case d3d9types.PoolManaged:
		mode = backend.MapWriteDiscard
	case d3d9types.PoolSystemMem:
		mode = backend.MapReadWrite
	default:
		Logger().Error("cannot lock resource in pool", "pool", pool)
		return 0, 0, ErrInvalidCall
	}

	if flags.Contains(d3d9types.LockDiscard) {
		mode = backend.MapWriteDiscard
	}
	if flags.Contains(d3d9types.LockNoOverwrite) {
		mode = backend.MapWriteNoOverwrite
	}
	return mode, mf, nil
}
