package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gavelauto/goapi/base/ctx"
	"github.com/gavelauto/goapi/base/ptr"
	"github.com/gavelauto/goapi/domain"
	"github.com/gavelauto/goapi/domain/listing"
	"github.com/gavelauto/goapi/domain/listing/mocks"
	"github.com/gavelauto/goapi/service/query"
)

type listingUseCaseSuite struct {
	suite.Suite

	repo *mocks.Repo
	im   listing.Usecase
}

func (s *listingUseCaseSuite) SetupTest() {
	s.repo = &mocks.Repo{}
	s.im = New(&ListingUseCaseCfg{
		ListingRepo: s.repo,
	})
}

func TestListingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(listingUseCaseSuite))
}

func (s *listingUseCaseSuite) TestCreate() {
	c := ctx.Background()

	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Id != "" &&
			l.Status == listing.StatusPending &&
			l.Country == "US"
	})).Return(nil).Once()

	l, err := s.im.Create(c, &listing.Listing{
		SellerId:      "seller-1",
		Make:          "Honda",
		Model:         "Accord",
		Year:          2019,
		Category:      "sedan",
		Country:       "us",
		StartingPrice: 10_000_00,
		Currency:      "USD",
	})
	s.Require().NoError(err)
	s.Equal(listing.StatusPending, l.Status)
	s.repo.AssertExpectations(s.T())
}

func (s *listingUseCaseSuite) TestCreateRejectsBadPricing() {
	c := ctx.Background()

	_, err := s.im.Create(c, &listing.Listing{
		SellerId:      "seller-1",
		Country:       "US",
		StartingPrice: 0,
		Currency:      "USD",
	})
	s.Equal(domain.ErrBadParamInput, err)

	// reserve below the starting price can never be met by a valid bid
	_, err = s.im.Create(c, &listing.Listing{
		SellerId:      "seller-1",
		Country:       "US",
		StartingPrice: 10_000_00,
		ReservePrice:  ptr.Int64(5_000_00),
		Currency:      "USD",
	})
	s.Equal(domain.ErrBadParamInput, err)

	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestApprove() {
	c := ctx.Background()

	approved := &listing.Listing{Id: "listing-1", Status: listing.StatusApproved}
	s.repo.On("UpdateIfStatus", mock.Anything, "listing-1", []listing.Status{listing.StatusPending}, mock.Anything).Return(nil).Once()
	s.repo.On("FindOne", mock.Anything, "listing-1").Return(approved, nil).Once()

	l, err := s.im.Approve(c, "listing-1")
	s.Require().NoError(err)
	s.Equal(listing.StatusApproved, l.Status)
}

func (s *listingUseCaseSuite) TestApproveNotPending() {
	c := ctx.Background()

	s.repo.On("UpdateIfStatus", mock.Anything, "listing-1", []listing.Status{listing.StatusPending}, mock.Anything).Return(query.ErrNotFound).Once()

	_, err := s.im.Approve(c, "listing-1")
	s.Equal(domain.ErrInvalidPrecondition, err)
}

func (s *listingUseCaseSuite) TestWithdrawOnlyBySeller() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, "listing-1").Return(&listing.Listing{
		Id:       "listing-1",
		SellerId: "seller-1",
		Status:   listing.StatusApproved,
	}, nil).Once()

	_, err := s.im.Withdraw(c, "listing-1", "someone-else")
	s.Equal(domain.ErrInvalidPrecondition, err)
	s.repo.AssertNotCalled(s.T(), "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestWithdrawLiveListing() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, "listing-1").Return(&listing.Listing{
		Id:       "listing-1",
		SellerId: "seller-1",
		Status:   listing.StatusLive,
	}, nil).Once()
	s.repo.On("UpdateIfStatus", mock.Anything, "listing-1", mock.Anything, mock.Anything).Return(query.ErrNotFound).Once()

	_, err := s.im.Withdraw(c, "listing-1", "seller-1")
	s.Equal(domain.ErrInvalidPrecondition, err)
}
