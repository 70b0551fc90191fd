/*

Mainnet contract addresses and the minimal view-method ABIs the adapters
need. Each adapter resolves its own fixed set of these; nothing here is
discovered at runtime.

*/

package pools

import (
	"github.com/ethereum/go-ethereum/common"
)

// Token and pool contract addresses (Ethereum mainnet).
const (
	WETHTokenAddr = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	MUSDTokenAddr = "0xe2f2a5C287993345a840Db3B0845fbC70f5935a5"
	YAMTokenAddr  = "0x0e2298E3B3390e3b945a5456fBf59eCc3f55DA16"
	YCRVTokenAddr = "0xdF5e0e81Dff6FAF3A7e52BA697820c5e32D806A8"

	// Balancer MUSD/WETH pool; the pool contract doubles as the BPT token.
	MUSDWETHBPTAddr = "0xe036CCE08cf4E23D33bC6B18e53Caf532AFa8513"

	// Curve Y pool, source of the yCRV virtual price.
	CurveYPoolAddr = "0x45F783CCE6B7FF23B2ab2D70e416cdb7D6055f51"

	// Uniswap V2 pairs staked by the YAM reward pools.
	YAMYCRVUniPairAddr = "0x2C7a51A357d5739C5C74Bf3C96816849d2c9F726"
	YAMWETHUniPairAddr = "0x0F82E57804D0B1F6FAb2370A43dcFAd3c7cB239c"

	// Synthetix-style reward pools.
	YAMYCRVRewardPoolAddr = "0xADDBCd6A68BFeb6E312e82B30cE1EB4a54497F4c"
	YAMWETHRewardPoolAddr = "0x587A07cE5c265A38Dd6d42def1566BA73eeb06F5"
	YearnCurveRewardAddr  = "0x0001FB050Fe7312791bF6475b96569D83F695C9f"
)

// Symbols requested from the price oracle (CoinGecko asset identifiers).
const (
	SymbolMTA  = "meta"
	SymbolMUSD = "musd"
	SymbolWETH = "weth"
	SymbolYAM  = "yam"
	SymbolYFI  = "yearn-finance"
)

// mustAddr converts one of the fixed address constants above. Only ever
// called with compile-time constants, so a bad value is a programming error.
func mustAddr(hexAddr string) common.Address {
	if !common.IsHexAddress(hexAddr) {
		panic("invalid contract address constant: " + hexAddr)
	}
	return common.HexToAddress(hexAddr)
}

// erc20ABI covers the read methods shared by every ERC20 token.
const erc20ABI = `[
	{"name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// balancerPoolABI covers a Balancer pool contract, which is itself the ERC20
// share token.
const balancerPoolABI = `[
	{"name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"getBalance","inputs":[{"name":"token","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// curvePoolABI exposes the virtual price of a Curve pool's LP token.
const curvePoolABI = `[
	{"name":"get_virtual_price","inputs":[],"outputs":[{"name":"out","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// synthRewardsABI covers the Synthetix StakingRewards layout the YAM and
// yearn reward pools fork.
const synthRewardsABI = `[
	{"name":"rewardRate","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"periodFinish","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"starttime","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"earned","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// yamTokenABI adds the rebase scaling factor to the ERC20 surface.
const yamTokenABI = `[
	{"name":"yamsScalingFactor","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`
