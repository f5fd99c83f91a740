package handlers

import (
	"strings"

	"apiproducts/internal/apperrors"
	"apiproducts/internal/links"
	"apiproducts/internal/models"
	"apiproducts/internal/services"
	"apiproducts/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// ProductDeletedMessage is the body sent after a successful delete.
const ProductDeletedMessage = "Product deleted sucessfully."

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	// byName must be registered before /:id so it is not taken for an id.
	productRoutes.Get("/byName", h.HandleSearchByName)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a product from a validated JSON body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(models.NewProductResource(*product))
}

// HandleGetProducts lists every product, each with a self link.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(links.NewBuilder(c.BaseURL()).List(products))
}

// HandleGetProductByID returns one product with a link back to the list.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(links.NewBuilder(c.BaseURL()).Detail(*product))
}

// HandleUpdateProduct overwrites the product's fields with a validated JSON body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(models.NewProductResource(*product))
}

// HandleDeleteProduct removes a product and answers with a plain-text confirmation.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(ProductDeletedMessage)
}

// HandleSearchByName returns products whose name contains the `name` query parameter.
// The parameter must be present; an empty value matches every product.
func (h *ProductHandler) HandleSearchByName(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("name") {
		return apperrors.NewBadRequestError("Required request parameter 'name' is not present", nil)
	}
	fragment := c.Query("name")

	products, err := h.service.SearchProductsByName(c.UserContext(), fragment)
	if err != nil {
		return err
	}
	return c.JSON(links.NewBuilder(c.BaseURL()).Search(products, fragment))
}

func (h *ProductHandler) parseInput(c *fiber.Ctx) (models.ProductInput, error) {
	var input models.ProductInput
	if !isJSON(c.Get(fiber.HeaderContentType)) {
		return input, apperrors.NewUnsupportedMediaTypeError(c.Get(fiber.HeaderContentType))
	}
	if err := c.BodyParser(&input); err != nil {
		return input, apperrors.NewBadRequestError("Invalid request body", err)
	}
	if err := h.validate.Struct(input); err != nil {
		return input, err
	}
	return input, nil
}

// isJSON reports whether contentType names application/json, ignoring case and parameters.
func isJSON(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return utils.ToLower(utils.Trim(mediaType, ' ')) == fiber.MIMEApplicationJSON
}

func parseID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", apperrors.NewBadRequestError("Invalid product id", err)
	}
	return id.String(), nil
}
