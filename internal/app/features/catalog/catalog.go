// Package catalog serves the ordered, toggleable catalogs (team members and
// the service schemes) over one generic set of handlers.
package catalog

import (
	"context"
	"net/http"

	catalogstore "github.com/dalemusser/coophub/internal/app/store/catalog"
	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Resource serves one catalog collection.
type Resource[T any, P catalogstore.Entry[T]] struct {
	// Noun names an entry in messages, e.g. "Team member".
	Noun  string
	Store *catalogstore.Store[T, P]
	Log   *zap.Logger
	// Prepare, when set, cleans an entry before it is stored.
	Prepare func(*T)
}

func (res *Resource[T, P]) notFound() error { return apperr.NotFound(res.Noun + " not found") }

func (res *Resource[T, P]) idParam(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, res.notFound()
	}
	return id, nil
}

func (res *Resource[T, P]) prepare(v *T) {
	if res.Prepare != nil {
		res.Prepare(v)
	}
}

// ServeActive lists active entries by display order.
func (res *Resource[T, P]) ServeActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := res.Store.ListActive(ctx)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	respond.List(w, list)
}

// ServeAll lists every entry, active or not.
func (res *Resource[T, P]) ServeAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	list, err := res.Store.ListAll(ctx)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	respond.List(w, list)
}

func (res *Resource[T, P]) ServeByID(w http.ResponseWriter, r *http.Request) {
	id, err := res.idParam(r)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	v, err := res.Store.Get(ctx, id)
	if err != nil {
		respond.Error(w, r, res.Log, respond.NotFoundOr(err, res.Noun+" not found"))
		return
	}
	respond.OK(w, "", v)
}

func (res *Resource[T, P]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var v T
	if err := inputval.DecodeJSON(w, r, &v); err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	res.prepare(&v)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	v, err := res.Store.Create(ctx, v)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	respond.Created(w, res.Noun+" created successfully", v)
}

// HandleUpdate merges the body onto the stored entry; absent fields keep
// their values.
func (res *Resource[T, P]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := res.idParam(r)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	raw, err := inputval.DecodeRaw(w, r)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	v, err := res.Store.Update(ctx, id, func(v *T) error {
		if err := inputval.Unmarshal(raw, v); err != nil {
			return err
		}
		res.prepare(v)
		return nil
	})
	if err != nil {
		respond.Error(w, r, res.Log, respond.NotFoundOr(err, res.Noun+" not found"))
		return
	}
	respond.OK(w, res.Noun+" updated successfully", v)
}

// HandleToggle flips the active flag.
func (res *Resource[T, P]) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, err := res.idParam(r)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	v, err := res.Store.Toggle(ctx, id)
	if err != nil {
		respond.Error(w, r, res.Log, respond.NotFoundOr(err, res.Noun+" not found"))
		return
	}
	msg := res.Noun + " deactivated"
	if P(&v).Base().Active() {
		msg = res.Noun + " activated"
	}
	respond.OK(w, msg, v)
}

func (res *Resource[T, P]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := res.idParam(r)
	if err != nil {
		respond.Error(w, r, res.Log, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := res.Store.Delete(ctx, id); err != nil {
		respond.Error(w, r, res.Log, respond.NotFoundOr(err, res.Noun+" not found"))
		return
	}
	respond.OK(w, res.Noun+" deleted successfully", nil)
}

// Routes mounts the standard catalog verbs. Listing active entries and
// reading one are public; everything else goes through gate.
func (res *Resource[T, P]) Routes(gate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", res.ServeActive)

	r.Group(func(pr chi.Router) {
		pr.Use(gate)
		pr.Get("/all", res.ServeAll)
		pr.Post("/", res.HandleCreate)
		pr.Put("/{id}", res.HandleUpdate)
		pr.Patch("/{id}/toggle", res.HandleToggle)
		pr.Delete("/{id}", res.HandleDelete)
	})

	r.Get("/{id}", res.ServeByID)

	return r
}
