package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/middleware"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/model"
	"github.com/kenoreyes238/keno-reyes-final-project-back/internal/repository"
)

type productRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
}

// listProductsHandler returns every product whose deleted flag is still 0.
func listProductsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)

		products := repository.NewProductRepository(sess)
		list, err := products.List(c.Request().Context())
		if err != nil {
			return internalError(c)
		}
		return c.JSON(http.StatusOK, list)
	}
}

func addProductHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)

		var req productRequest
		if err := c.Bind(&req); err != nil {
			return internalError(c)
		}

		products := repository.NewProductRepository(sess)
		_, err := products.Create(c.Request().Context(), &model.Product{
			Name:     req.Name,
			Price:    req.Price,
			Quantity: req.Quantity,
			Amount:   req.Amount,
		})
		if err != nil {
			return internalError(c)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Product added successfully",
			"data":    nil,
		})
	}
}

// editProductHandler updates a row by id. There is no existence check: an
// absent id affects zero rows and still reports success.
func editProductHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return internalError(c)
		}

		var req productRequest
		if err := c.Bind(&req); err != nil {
			return internalError(c)
		}

		products := repository.NewProductRepository(sess)
		if _, err := products.Update(c.Request().Context(), id, &model.Product{
			Name:     req.Name,
			Price:    req.Price,
			Quantity: req.Quantity,
			Amount:   req.Amount,
		}); err != nil {
			return internalError(c)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Product updated successfully",
		})
	}
}

// deleteProductHandler soft-deletes by setting the deleted flag; the row is
// never physically removed. No existence check, same as edit.
func deleteProductHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFromContext(c)

		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return internalError(c)
		}

		products := repository.NewProductRepository(sess)
		if _, err := products.SoftDelete(c.Request().Context(), id); err != nil {
			return internalError(c)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Product deleted successfully",
		})
	}
}
