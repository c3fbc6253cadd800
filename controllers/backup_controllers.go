package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type BackupController struct {
	Service *services.BackupService
}

func NewBackupController(svc *services.BackupService) *BackupController {
	return &BackupController{Service: svc}
}

// RunBackupAndReset exports the order history, emails both artifacts, then
// purges the store. The three failure modes surface as distinct statuses:
// 501 when the environment cannot produce artifacts, 502 when the email
// failed (nothing purged), 207 when the email went out but the purge failed.
func (bc *BackupController) RunBackupAndReset(c *gin.Context) {
	result, err := bc.Service.Run(c.Request.Context())

	switch {
	case err == nil:
		utils.RespondJSON(c, http.StatusOK, "Backup sent and order history cleared", result)
	case errors.Is(err, services.ErrUnsupportedEnvironment):
		utils.RespondError(c, http.StatusNotImplemented, err)
	case errors.Is(err, services.ErrTransmission):
		utils.RespondError(c, http.StatusBadGateway, err)
	case errors.Is(err, services.ErrPartialBackup):
		// Data was exported but still resides in the store.
		utils.RespondJSON(c, http.StatusMultiStatus, err.Error(), result)
	default:
		utils.RespondError(c, storeErrorStatus(err), err)
	}
}
