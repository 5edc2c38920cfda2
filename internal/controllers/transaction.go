package controllers

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/api/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	_, err := getTransactionResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// getTransactionResource loads the transaction from the URI and
// verifies that it belongs to the authenticated user.
//
// A transaction of another user results in models.ErrNoResourceOwnership,
// not in a "not found" error, so that the two cases can be reported
// with different HTTP statuses.
func getTransactionResource(c *gin.Context) (models.Transaction, error) {
	id, err := parseID(c)
	if err != nil {
		return models.Transaction{}, err
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", id).Error
	if err != nil {
		return models.Transaction{}, err
	}

	if transaction.UserID != userID(c) {
		return models.Transaction{}, models.ErrNoResourceOwnership
	}

	return transaction, nil
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the authenticated user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	if editable.Narration == "" || editable.Amount.IsZero() || editable.Category == "" {
		e := errTransactionFieldsRequired.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	// Amount, type and budget reference are validated on save
	transaction := editable.model(userID(c))
	err = models.DB.Create(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Get transactions
// @Description	Returns the transactions of the authenticated user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			date		query		string	false	"Transactions on this calendar day. Ignores exact time, matches on the day of the date provided."
// @Param			category	query		string	false	"Filter by category. Supports * as wildcard."
// @Param			budgetId	query		string	false	"Filter by budget ID"
// @Router			/api/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		e := httputil.ErrInvalidBody.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("created_at DESC").
		Where("user_id = ?", userID(c))

	// Filter for the transaction being on the same calendar day
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("time >= ?", date).Where("time < ?", date.AddDate(0, 0, 1))
	}

	if filter.BudgetID != "" {
		id, err := uuid.Parse(filter.BudgetID)
		if err != nil {
			e := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
			return
		}

		q = q.Where("budget_id = ?", id)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	// The category filter supports glob matching, which the database
	// cannot do for us
	data := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.Category != "" && !glob.Glob(filter.Category, transaction.Category) {
			continue
		}

		data = append(data, transaction)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction of the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		403	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/api/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	transaction, err := getTransactionResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		403			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transactions/{id} [put]
func UpdateTransaction(c *gin.Context) {
	transaction, err := getTransactionResource(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	var update TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	// Supplied fields must pass the same validation as on create
	if slices.Contains(updateFields, any("Narration")) && update.Narration == "" ||
		slices.Contains(updateFields, any("Category")) && update.Category == "" {
		e := errTransactionFieldsRequired.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(update.model(transaction.UserID)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	// Return the resource as it is persisted
	err = models.DB.First(&transaction, "id = ?", transaction.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/api/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	transaction, err := getTransactionResource(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{})
}
