package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/screen"
)

// ScreenHandler expone una pantalla CRM genérica: listado filtrado y paginado,
// mutaciones y exportación. Una instancia por recurso (leads, contacts, ...).
type ScreenHandler[T any, D any] struct {
	uc *screen.UseCase[T, D]
}

// NewScreenHandler construye el handler de la pantalla.
func NewScreenHandler[T any, D any](uc *screen.UseCase[T, D]) *ScreenHandler[T, D] {
	return &ScreenHandler[T, D]{uc: uc}
}

// Register monta las rutas de la pantalla en el grupo dado.
func (h *ScreenHandler[T, D]) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Get("/export/:format", h.Export)
}

// List godoc
// @Summary      Listar registros (filtrados y paginados)
// @Tags         screens
// @Produce      json
// @Param        q     query  string  false  "Filtro de texto"
// @Param        page  query  int     false  "Página (1..N)"  default(1)
// @Success      200   {object}  screen.View[any]
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/{screen} [get]
func (h *ScreenHandler[T, D]) List(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	query := c.Query("q")
	page := c.QueryInt("page", 1)

	view, err := h.uc.View(c.Context(), sess.Token, query, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// Create godoc
// @Summary      Crear registro
// @Tags         screens
// @Accept       json
// @Produce      json
// @Success      201  {object}  any
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/{screen} [post]
func (h *ScreenHandler[T, D]) Create(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	var draft D
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Create(c.Context(), sess.Token, sess.UserID, draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar registro
// @Tags         screens
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  any
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{screen}/{id} [put]
func (h *ScreenHandler[T, D]) Update(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	id := c.Params("id")
	var draft D
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	out, err := h.uc.Update(c.Context(), sess.Token, sess.UserID, id, draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar registro
// @Tags         screens
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{screen}/{id} [delete]
func (h *ScreenHandler[T, D]) Delete(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	if err := h.uc.Delete(c.Context(), sess.Token, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar el conjunto filtrado (csv, xlsx o pdf)
// @Tags         screens
// @Produce      octet-stream
// @Param        format  path   string  true   "csv | xlsx | pdf"
// @Param        q       query  string  false  "Filtro de texto"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/{screen}/export/{format} [get]
func (h *ScreenHandler[T, D]) Export(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	file, err := h.uc.Export(c.Context(), sess.Token, c.Query("q"), c.Params("format"))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Content)
}
