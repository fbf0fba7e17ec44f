package blob

import (
	"context"
	"sync/atomic"
)

// Interceptor defines functions that are invoked around blob operations.
//
// The functions may be changed at any time, including while the intercepted
// store is in use.
type Interceptor struct {
	beforeLoad atomic.Pointer[func(string) error]
	afterLoad  atomic.Pointer[func(string, []byte) error]
	beforeSave atomic.Pointer[func(string, []byte) error]
	afterSave  atomic.Pointer[func(string, []byte) error]
}

// BeforeLoad sets the function that is invoked before a blob is loaded.
func (i *Interceptor) BeforeLoad(fn func(name string) error) {
	setNameFn(&i.beforeLoad, fn)
}

// AfterLoad sets the function that is invoked after a blob is loaded
// successfully. It is not invoked if the load fails, including when the blob
// does not exist.
func (i *Interceptor) AfterLoad(fn func(name string, data []byte) error) {
	setDataFn(&i.afterLoad, fn)
}

// BeforeSave sets the function that is invoked before a blob is saved.
func (i *Interceptor) BeforeSave(fn func(name string, data []byte) error) {
	setDataFn(&i.beforeSave, fn)
}

// AfterSave sets the function that is invoked after a blob is saved.
func (i *Interceptor) AfterSave(fn func(name string, data []byte) error) {
	setDataFn(&i.afterSave, fn)
}

// WithInterceptor returns a [Store] that invokes the functions defined by the
// given [Interceptor] when performing operations on s.
func WithInterceptor(s Store, in *Interceptor) Store {
	if in == nil {
		return s
	}

	return &interceptedStore{
		Next:        s,
		Interceptor: in,
	}
}

func setNameFn(dst *atomic.Pointer[func(string) error], fn func(string) error) {
	if fn == nil {
		dst.Store(nil)
		return
	}

	dst.Store(&fn)
}

func setDataFn(dst *atomic.Pointer[func(string, []byte) error], fn func(string, []byte) error) {
	if fn == nil {
		dst.Store(nil)
		return
	}

	dst.Store(&fn)
}

type interceptedStore struct {
	Next        Store
	Interceptor *Interceptor
}

func (s *interceptedStore) Load(ctx context.Context, name string) ([]byte, error) {
	if fn := s.Interceptor.beforeLoad.Load(); fn != nil {
		if err := (*fn)(name); err != nil {
			return nil, err
		}
	}

	data, err := s.Next.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	if fn := s.Interceptor.afterLoad.Load(); fn != nil {
		if err := (*fn)(name, data); err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (s *interceptedStore) Save(ctx context.Context, name string, data []byte) error {
	if fn := s.Interceptor.beforeSave.Load(); fn != nil {
		if err := (*fn)(name, data); err != nil {
			return err
		}
	}

	if err := s.Next.Save(ctx, name, data); err != nil {
		return err
	}

	if fn := s.Interceptor.afterSave.Load(); fn != nil {
		if err := (*fn)(name, data); err != nil {
			return err
		}
	}

	return nil
}
