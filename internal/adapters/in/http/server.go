package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bloqnet/internal/core/application/managers"
	"bloqnet/internal/pkg/errs"
)

// Server exposes the three managers over HTTP.
// Handlers parse the request, call one manager operation, and pass the
// result through verbatim; status codes come from the errs taxonomy.
type Server struct {
	bloqManager   *managers.BloqManager
	lockerManager *managers.LockerManager
	rentManager   *managers.RentManager
}

// NewServer creates a new HTTP server over the given managers.
func NewServer(bloqManager *managers.BloqManager,
	lockerManager *managers.LockerManager,
	rentManager *managers.RentManager) *Server {
	return &Server{
		bloqManager:   bloqManager,
		lockerManager: lockerManager,
		rentManager:   rentManager,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/bloq", s.GetBloqs)
	e.POST("/bloq", s.CreateBloq)
	e.PUT("/bloq", s.UpdateBloq)
	e.DELETE("/bloq", s.DeleteBloq)

	e.GET("/locker", s.GetLockers)
	e.POST("/locker", s.CreateLocker)
	e.DELETE("/locker", s.DeleteLocker)
	e.PUT("/locker/:id/open", s.OpenLocker)
	e.PUT("/locker/:id/close", s.CloseLocker)

	e.GET("/rent", s.GetRents)
	e.POST("/rent", s.CreateRent)
	e.DELETE("/rent", s.DeleteRent)
	e.PUT("/rent/:id/send", s.SendRent)
	e.PUT("/rent/:id/dropoff", s.DropoffRent)
	e.PUT("/rent/:id/pickup", s.PickupRent)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type deletedResponse struct {
	Deleted string `json:"deleted"`
}

// fail renders a manager error with the status its classification maps to.
func fail(ctx echo.Context, err error) error {
	code := errs.HTTPStatus(err)
	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func bindPayload(ctx echo.Context) (map[string]any, error) {
	var payload map[string]any
	if err := ctx.Bind(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetBloqs handles GET /bloq - one bloq by ?id=, or all of them.
//
//	@Summary	List bloqs or fetch one by id
//	@Tags		bloq
//	@Param		id	query	string	false	"bloq id"
//	@Produce	json
//	@Success	200
//	@Router		/bloq [get]
func (s *Server) GetBloqs(ctx echo.Context) error {
	if ctx.QueryParams().Has("id") {
		found, err := s.bloqManager.GetByID(ctx.Request().Context(), ctx.QueryParam("id"))
		if err != nil {
			return fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, found)
	}

	all, err := s.bloqManager.GetAll(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, all)
}

// CreateBloq handles POST /bloq.
//
//	@Summary	Create a bloq
//	@Tags		bloq
//	@Accept		json
//	@Produce	json
//	@Success	201
//	@Router		/bloq [post]
func (s *Server) CreateBloq(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request body")
	}

	created, err := s.bloqManager.Create(ctx.Request().Context(), payload)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// UpdateBloq handles PUT /bloq - full replacement of title and address.
//
//	@Summary	Update a bloq
//	@Tags		bloq
//	@Accept		json
//	@Produce	json
//	@Success	200
//	@Router		/bloq [put]
func (s *Server) UpdateBloq(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request body")
	}

	updated, err := s.bloqManager.Update(ctx.Request().Context(), payload)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, updated)
}

// DeleteBloq handles DELETE /bloq?id= - cascades to lockers and rents.
//
//	@Summary	Delete a bloq and everything in it
//	@Tags		bloq
//	@Param		id	query	string	true	"bloq id"
//	@Produce	json
//	@Success	200
//	@Router		/bloq [delete]
func (s *Server) DeleteBloq(ctx echo.Context) error {
	id := ctx.QueryParam("id")
	if id == "" {
		return badRequest(ctx, "query parameter 'id' is required")
	}

	if err := s.bloqManager.Delete(ctx.Request().Context(), id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, deletedResponse{Deleted: id})
}

// GetLockers handles GET /locker - by ?id=, by ?bloqId=, or all.
// The two filters are mutually exclusive.
//
//	@Summary	List lockers, or filter by id or bloqId
//	@Tags		locker
//	@Param		id		query	string	false	"locker id"
//	@Param		bloqId	query	string	false	"bloq id"
//	@Produce	json
//	@Success	200
//	@Router		/locker [get]
func (s *Server) GetLockers(ctx echo.Context) error {
	hasID := ctx.QueryParams().Has("id")
	hasBloqID := ctx.QueryParams().Has("bloqId")

	switch {
	case hasID && hasBloqID:
		return badRequest(ctx, "'id' and 'bloqId' are mutually exclusive")
	case hasID:
		found, err := s.lockerManager.GetByID(ctx.Request().Context(), ctx.QueryParam("id"))
		if err != nil {
			return fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, found)
	case hasBloqID:
		found, err := s.lockerManager.GetByBloqID(ctx.Request().Context(), ctx.QueryParam("bloqId"))
		if err != nil {
			return fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, found)
	}

	all, err := s.lockerManager.GetAll(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, all)
}

// CreateLocker handles POST /locker.
//
//	@Summary	Create a locker inside a bloq
//	@Tags		locker
//	@Accept		json
//	@Produce	json
//	@Success	201
//	@Router		/locker [post]
func (s *Server) CreateLocker(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request body")
	}

	created, err := s.lockerManager.Create(ctx.Request().Context(), payload)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// DeleteLocker handles DELETE /locker?id= - cascades to the locker's rents.
//
//	@Summary	Delete a locker and its rents
//	@Tags		locker
//	@Param		id	query	string	true	"locker id"
//	@Produce	json
//	@Success	200
//	@Router		/locker [delete]
func (s *Server) DeleteLocker(ctx echo.Context) error {
	id := ctx.QueryParam("id")
	if id == "" {
		return badRequest(ctx, "query parameter 'id' is required")
	}

	if err := s.lockerManager.Delete(ctx.Request().Context(), id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, deletedResponse{Deleted: id})
}

// OpenLocker handles PUT /locker/:id/open.
//
//	@Summary	Open a locker door
//	@Tags		locker
//	@Param		id	path	string	true	"locker id"
//	@Produce	json
//	@Success	200
//	@Router		/locker/{id}/open [put]
func (s *Server) OpenLocker(ctx echo.Context) error {
	opened, err := s.lockerManager.Open(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, opened)
}

// CloseLocker handles PUT /locker/:id/close.
//
//	@Summary	Close a locker door
//	@Tags		locker
//	@Param		id	path	string	true	"locker id"
//	@Produce	json
//	@Success	200
//	@Router		/locker/{id}/close [put]
func (s *Server) CloseLocker(ctx echo.Context) error {
	closed, err := s.lockerManager.Close(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, closed)
}

// GetRents handles GET /rent - by ?id=, by ?lockerId=, or all.
// The two filters are mutually exclusive; an empty lockerId value selects
// rents not assigned to any locker.
//
//	@Summary	List rents, or filter by id or lockerId
//	@Tags		rent
//	@Param		id			query	string	false	"rent id"
//	@Param		lockerId	query	string	false	"locker id; empty selects unassigned rents"
//	@Produce	json
//	@Success	200
//	@Router		/rent [get]
func (s *Server) GetRents(ctx echo.Context) error {
	hasID := ctx.QueryParams().Has("id")
	hasLockerID := ctx.QueryParams().Has("lockerId")

	switch {
	case hasID && hasLockerID:
		return badRequest(ctx, "'id' and 'lockerId' are mutually exclusive")
	case hasID:
		found, err := s.rentManager.GetByID(ctx.Request().Context(), ctx.QueryParam("id"))
		if err != nil {
			return fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, found)
	case hasLockerID:
		found, err := s.rentManager.GetByLockerID(ctx.Request().Context(), ctx.QueryParam("lockerId"))
		if err != nil {
			return fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, found)
	}

	all, err := s.rentManager.GetAll(ctx.Request().Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, all)
}

// CreateRent handles POST /rent.
//
//	@Summary	Create a rent
//	@Tags		rent
//	@Accept		json
//	@Produce	json
//	@Success	201
//	@Router		/rent [post]
func (s *Server) CreateRent(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request body")
	}

	created, err := s.rentManager.Create(ctx.Request().Context(), payload)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// DeleteRent handles DELETE /rent?id=.
//
//	@Summary	Delete a rent
//	@Tags		rent
//	@Param		id	query	string	true	"rent id"
//	@Produce	json
//	@Success	200
//	@Router		/rent [delete]
func (s *Server) DeleteRent(ctx echo.Context) error {
	id := ctx.QueryParam("id")
	if id == "" {
		return badRequest(ctx, "query parameter 'id' is required")
	}

	if err := s.rentManager.Delete(ctx.Request().Context(), id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, deletedResponse{Deleted: id})
}

// SendRent handles PUT /rent/:id/send?toLockerId=.
//
//	@Summary	Send a rent to a locker
//	@Tags		rent
//	@Param		id			path	string	true	"rent id"
//	@Param		toLockerId	query	string	true	"destination locker id"
//	@Produce	json
//	@Success	200
//	@Router		/rent/{id}/send [put]
func (s *Server) SendRent(ctx echo.Context) error {
	lockerID := ctx.QueryParam("toLockerId")
	if lockerID == "" {
		return badRequest(ctx, "query parameter 'toLockerId' is required")
	}

	sent, err := s.rentManager.Send(ctx.Request().Context(), ctx.Param("id"), lockerID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, sent)
}

// DropoffRent handles PUT /rent/:id/dropoff?toLockerId=.
//
//	@Summary	Confirm a parcel dropoff
//	@Tags		rent
//	@Param		id			path	string	true	"rent id"
//	@Param		toLockerId	query	string	true	"locker the parcel was placed in"
//	@Produce	json
//	@Success	200
//	@Router		/rent/{id}/dropoff [put]
func (s *Server) DropoffRent(ctx echo.Context) error {
	lockerID := ctx.QueryParam("toLockerId")
	if lockerID == "" {
		return badRequest(ctx, "query parameter 'toLockerId' is required")
	}

	dropped, err := s.rentManager.Dropoff(ctx.Request().Context(), ctx.Param("id"), lockerID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dropped)
}

// PickupRent handles PUT /rent/:id/pickup?fromLockerId=.
//
//	@Summary	Confirm a parcel pickup
//	@Tags		rent
//	@Param		id				path	string	true	"rent id"
//	@Param		fromLockerId	query	string	true	"locker the parcel was taken from"
//	@Produce	json
//	@Success	200
//	@Router		/rent/{id}/pickup [put]
func (s *Server) PickupRent(ctx echo.Context) error {
	lockerID := ctx.QueryParam("fromLockerId")
	if lockerID == "" {
		return badRequest(ctx, "query parameter 'fromLockerId' is required")
	}

	picked, err := s.rentManager.Pickup(ctx.Request().Context(), ctx.Param("id"), lockerID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, picked)
}
