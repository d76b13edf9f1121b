package routes

import (
	"github.com/gin-gonic/gin"

	"splitnest/internal/adapter/http/handlers"
)

const (
	PathHouses        = "/houses"
	PathRentProposals = "/rent-proposals"
	PathUsers         = "/users"
)

func addRentRoutes(
	rg *gin.RouterGroup,
	houseHandler *handlers.HouseHandler,
	requestHandler *handlers.RentRequestHandler,
	proposalHandler *handlers.RentProposalHandler,
	approvalHandler *handlers.RentApprovalHandler,
) {
	houses := rg.Group(PathHouses)
	{
		houses.GET("/:house_id", houseHandler.GetHouse)
		houses.PUT("/:house_id/rent-configuration", requestHandler.SetRentConfiguration)
		houses.GET("/:house_id/rent-allocation-request", requestHandler.GetRequest)
		houses.POST("/:house_id/rent-allocation-request/claim", requestHandler.ClaimRequest)
		houses.GET("/:house_id/rent-proposals", proposalHandler.ListProposals)
		houses.GET("/:house_id/rent-proposals/active", proposalHandler.GetActiveProposal)
		houses.POST("/:house_id/rent-proposals", proposalHandler.CreateDraft)
	}

	proposals := rg.Group(PathRentProposals)
	{
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id", proposalHandler.UpdateDraft)
		proposals.DELETE("/:id", proposalHandler.DeleteDraft)
		proposals.POST("/:id/submit", proposalHandler.SubmitProposal)
		proposals.GET("/:id/approval", approvalHandler.GetApprovalView)
		proposals.POST("/:id/approve", approvalHandler.Approve)
		proposals.POST("/:id/decline", approvalHandler.Decline)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/me/houses", houseHandler.ListMyHouses)
		users.GET("/me/pending-rent-approvals", approvalHandler.ListPending)
	}
}
