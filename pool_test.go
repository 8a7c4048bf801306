package d3d9to11

import (
	"errors"
	"testing"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

func TestTraitsForPool(t *testing.T) {
	tests := []struct {
		name      string
		pool      d3d9types.Pool
		requested backend.Bind
		want      poolTraits
	}{
		{
			name:      "default pool keeps requested bindings",
			pool:      d3d9types.PoolDefault,
			requested: backend.BindRenderTarget,
			want:      poolTraits{usage: backend.UsageDefault, bind: backend.BindRenderTarget},
		},
		{
			name:      "managed pool is dynamic and shader bindable",
			pool:      d3d9types.PoolManaged,
			requested: backend.BindRenderTarget,
			want: poolTraits{
				usage: backend.UsageDynamic,
				cpu:   backend.CPUAccessWrite,
				bind:  backend.BindShaderResource,
			},
		},
		{
			name:      "system memory is staging with full access",
			pool:      d3d9types.PoolSystemMem,
			requested: backend.BindShaderResource,
			want: poolTraits{
				usage: backend.UsageStaging,
				cpu:   backend.CPUAccessRead | backend.CPUAccessWrite,
			},
		},
		{
			name:      "scratch falls back to the default profile",
			pool:      d3d9types.PoolScratch,
			requested: backend.BindShaderResource,
			want:      poolTraits{usage: backend.UsageDefault, bind: backend.BindShaderResource},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := traitsForPool(tt.pool, tt.requested); got != tt.want {
				t.Errorf("traitsForPool(%v) = %+v, want %+v", tt.pool, got, tt.want)
			}
		})
	}
}

func TestMapModeForLock(t *testing.T) {
	tests := []struct {
		name      string
		pool      d3d9types.Pool
		flags     d3d9types.Lock
		wantMode  backend.MapMode
		wantFlags backend.MapFlags
		wantErr   error
	}{
		{
			name:     "read only maps for reading in any pool",
			pool:     d3d9types.PoolDefault,
			flags:    d3d9types.LockReadOnly,
			wantMode: backend.MapRead,
		},
		{
			name:     "managed pool discards on write",
			pool:     d3d9types.PoolManaged,
			wantMode: backend.MapWriteDiscard,
		},
		{
			name:     "system memory maps read-write",
			pool:     d3d9types.PoolSystemMem,
			wantMode: backend.MapReadWrite,
		},
		{
			name:     "explicit discard overrides the pool mode",
			pool:     d3d9types.PoolSystemMem,
			flags:    d3d9types.LockDiscard,
			wantMode: backend.MapWriteDiscard,
		},
		{
			name:     "no-overwrite overrides the pool mode",
			pool:     d3d9types.PoolManaged,
			flags:    d3d9types.LockNoOverwrite,
			wantMode: backend.MapWriteNoOverwrite,
		},
		{
			name:      "do-not-wait is carried alongside the mode",
			pool:      d3d9types.PoolManaged,
			flags:     d3d9types.LockDoNotWait,
			wantMode:  backend.MapWriteDiscard,
			wantFlags: backend.MapDoNotWait,
		},
		{
			name:    "default pool cannot be locked for writing",
			pool:    d3d9types.PoolDefault,
			wantErr: ErrInvalidCall,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, mf, err := mapModeForLock(tt.pool, tt.flags)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if mode != tt.wantMode || mf != tt.wantFlags {
				t.Errorf("mode, flags = %v, %v; want %v, %v", mode, mf, tt.wantMode, tt.wantFlags)
			}
		})
	}
}
