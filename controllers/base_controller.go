package controllers

import (
	"strconv"

	"github.com/demarillacizere/payment-api/repository"
	"github.com/demarillacizere/payment-api/utils"
	"github.com/gin-gonic/gin"
)

// CrudController implements the generic request flow shared by every
// entity: list, remove, deactivate/reactivate, and the store/update
// halves that entity controllers delegate to after validating input.
// Entity controllers embed it and supply their repository and route kind.
type CrudController struct {
	Repo repository.Repository
	Kind RouteKind
}

// Index handles GET /v1/<plural> and returns all records
func (ctl *CrudController) Index(c *gin.Context) {
	instance := "/v1/" + ctl.Kind.Plural()

	records, err := ctl.Repo.FindAll()
	if err != nil {
		utils.LogCritical("Failed to list %s: %v", ctl.Kind.Plural(), err)
		utils.Problem(c, "/errors/internal_server_error_upon_list_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return
	}

	if len(records) == 0 {
		utils.LogInfo("No %s found", ctl.Kind.Plural())
		utils.Problem(c, "/errors/no_"+ctl.Kind.Plural()+"_found",
			"List of "+ctl.Kind.Plural(), 404, "No records found", instance)
		return
	}

	data := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		data = append(data, record.Serialize())
	}

	utils.LogInfo("Found %d %s", len(records), ctl.Kind.Plural())
	utils.SuccessWithData(c, "List of "+ctl.Kind.Plural(), len(records), instance, data)
}

// Remove handles DELETE /v1/<plural>/:id
func (ctl *CrudController) Remove(c *gin.Context) {
	instance := "/v1/" + ctl.Kind.Plural() + "/{id}"

	id, ok := ctl.parseID(c)
	if !ok {
		return
	}

	record, err := ctl.Repo.FindByID(id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("No %s found with id %d upon removing", ctl.Kind.Singular(), id)
			utils.Problem(c, "/errors/no_"+ctl.Kind.Plural()+"_found_upon_removing",
				"Removing "+ctl.Kind.Singular(), 404, id, instance)
			return
		}
		utils.LogCritical("Failed to fetch %s %d: %v", ctl.Kind.Singular(), id, err)
		utils.Problem(c, "/errors/internal_server_error_upon_remove_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return
	}

	if err := ctl.Repo.Remove(record); err != nil {
		utils.LogCritical("Failed to remove %s %d: %v", ctl.Kind.Singular(), id, err)
		utils.Problem(c, "/errors/internal_server_error_upon_remove_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return
	}

	utils.LogInfo("%s %d removed", ctl.Kind.Singular(), id)
	utils.Success(c, ctl.Kind.Singular()+" has been removed", "", instance)
}

// Deactivate handles GET /v1/<plural>/deactivate/:id by clearing the
// record's active flag
func (ctl *CrudController) Deactivate(c *gin.Context) {
	ctl.setActive(c, false, "deactivate")
}

// Reactivate handles GET /v1/<plural>/reactivate/:id by setting the
// record's active flag
func (ctl *CrudController) Reactivate(c *gin.Context) {
	ctl.setActive(c, true, "reactivate")
}

func (ctl *CrudController) setActive(c *gin.Context, active bool, verb string) {
	instance := "/v1/" + ctl.Kind.Plural() + "/" + verb + "/{id}"
	past := verb + "d"
	noun := verb[:len(verb)-1] + "ion"

	id, ok := ctl.parseID(c)
	if !ok {
		return
	}

	record, err := ctl.Repo.FindByID(id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("No %s found with id %d upon %s", ctl.Kind.Singular(), id, noun)
			utils.Problem(c, "/errors/no_"+ctl.Kind.Plural()+"_found_upon_"+noun,
				utils.Capitalize(noun)+" of "+ctl.Kind.Singular(), 404, id, instance)
			return
		}
		utils.LogCritical("Failed to fetch %s %d: %v", ctl.Kind.Singular(), id, err)
		utils.Problem(c, "/errors/internal_server_error_upon_"+verb+"_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return
	}

	activatable, ok := record.(repository.Activatable)
	if !ok {
		utils.LogError("%s records carry no active flag", ctl.Kind.Singular())
		utils.Problem(c, "/errors/"+verb+"_not_supported",
			utils.Capitalize(noun)+" of "+ctl.Kind.Singular(), 400, id, instance)
		return
	}

	activatable.SetActive(active)
	if err := ctl.Repo.Update(activatable); err != nil {
		utils.LogCritical("Failed to %s %s %d: %v", verb, ctl.Kind.Singular(), id, err)
		utils.Problem(c, "/errors/internal_server_error_upon_"+verb+"_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return
	}

	utils.LogInfo("%s %d has been %s", ctl.Kind.Singular(), id, past)
	utils.Success(c, ctl.Kind.Singular()+" has been "+past, "", instance)
}

// storeModel persists a validated, populated model. Entity Create
// handlers call it after building the record from the request body.
func (ctl *CrudController) storeModel(c *gin.Context, model repository.Model) {
	instance := "/v1/" + ctl.Kind.Plural()

	if err := ctl.Repo.Store(model); err != nil {
		utils.LogCritical("Failed to store %s: %v", ctl.Kind.Singular(), err)
		utils.Problem(c, "/errors/internal_server_error_upon_create_"+ctl.Kind.Plural(),
			"Internal server error", 500, model.Serialize(), instance)
		return
	}

	utils.LogInfo("%s %d created", ctl.Kind.Singular(), model.PrimaryID())
	utils.Success(c, ctl.Kind.Singular()+" has been created", model.PrimaryID(), instance)
}

// updateModel persists mutations to a model the entity Update handler
// has already fetched and modified.
func (ctl *CrudController) updateModel(c *gin.Context, model repository.Model) {
	instance := "/v1/" + ctl.Kind.Plural() + "/{id}"

	if err := ctl.Repo.Update(model); err != nil {
		utils.LogCritical("Failed to update %s %d: %v", ctl.Kind.Singular(), model.PrimaryID(), err)
		utils.Problem(c, "/errors/internal_server_error_upon_update_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return
	}

	utils.LogInfo("%s %d updated", ctl.Kind.Singular(), model.PrimaryID())
	utils.Success(c, ctl.Kind.Singular()+" has been updated", "", instance)
}

// fetchForUpdate looks up the record an Update handler is about to
// mutate, writing the 404/500 envelope itself when the lookup fails.
func (ctl *CrudController) fetchForUpdate(c *gin.Context, id uint) (repository.Model, bool) {
	instance := "/v1/" + ctl.Kind.Plural() + "/{id}"

	record, err := ctl.Repo.FindByID(id)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogInfo("No %s found with id %d upon update", ctl.Kind.Singular(), id)
			utils.Problem(c, "/errors/no_"+ctl.Kind.Plural()+"_found_upon_update",
				"Updating "+ctl.Kind.Singular(), 404, id, instance)
			return nil, false
		}
		utils.LogCritical("Failed to fetch %s %d: %v", ctl.Kind.Singular(), id, err)
		utils.Problem(c, "/errors/internal_server_error_upon_update_"+ctl.Kind.Plural(),
			"Internal server error", 500, "", instance)
		return nil, false
	}
	return record, true
}

// parseID extracts the numeric path id, writing the 400 envelope when
// the segment is not an unsigned integer.
func (ctl *CrudController) parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.LogInfo("Invalid %s id %q", ctl.Kind.Singular(), raw)
		utils.Problem(c, "/errors/invalid_"+ctl.Kind.Singular()+"_id",
			"Invalid "+ctl.Kind.Singular()+" id", 400, raw, "/v1/"+ctl.Kind.Plural()+"/{id}")
		return 0, false
	}
	return uint(id), true
}
